// Package rsa defines the core model, error kinds and service contracts of the textbook RSA engine:
// keypairs derived from random primes, single-block modular-exponentiation encryption and decryption,
// and the boundary representation used by the request layer.
package rsa
