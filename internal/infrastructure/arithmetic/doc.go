// Package arithmetic implements the number theory behind the textbook RSA engine:
// square-and-multiply modular exponentiation, the iterative extended Euclidean
// algorithm, modular inversion, the Miller-Rabin probable-prime test and random
// prime generation.
//
// Every function works on math/big integers and never mutates its arguments.
// Functions without a random source are pure and safe for concurrent use; the
// random-backed types are safe for concurrent use as long as their io.Reader is.
package arithmetic
