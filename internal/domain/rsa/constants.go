package rsa

// DefaultMillerRabinRounds is the number of random witnesses drawn by the primality test
const DefaultMillerRabinRounds = 12

// MaxMillerRabinRounds caps the witnesses a single test may draw
const MaxMillerRabinRounds = 128

// DefaultBitsPerPrime is used by the request layer when the caller omits the bit length
const DefaultBitsPerPrime = 32

// MinBitsPerPrime is the smallest prime bit length the generator accepts
const MinBitsPerPrime = 2

// DefaultMaxPrimeAttempts bounds the candidate resample loop of prime generation
const DefaultMaxPrimeAttempts = 100000

// ExponentSearchCap is the exclusive upper bound of the odd public exponent search
const ExponentSearchCap = 1 << 20

// PublicExponentCandidates are tried in order before falling back to the odd search
var PublicExponentCandidates = []int64{65537, 17, 3, 5}

// BytePolicyStrict rejects text bytes that are not below the modulus
const BytePolicyStrict = "strict"

// BytePolicyDrop silently omits text bytes that are not below the modulus
const BytePolicyDrop = "drop"
