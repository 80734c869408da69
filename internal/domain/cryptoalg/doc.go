// Package cryptoalg defines the processor contracts of the textbook RSA engine:
// keypair derivation, single-block encryption and decryption, and the text codec
// that turns messages into byte blocks.
package cryptoalg
