// Package numtheory collects integer number-theory helpers: the extended
// Euclidean algorithm, modular exponentiation and the small utilities built
// on them (GCD, LCM, MulMod, ModInverse).
//
// Every helper is a pure generic function parameterized by the integer kind
// (golang.org/x/exp/constraints), so one implementation serves int, int32,
// int64, uint64 and friends.
//
// Division semantics:
//
//	Go's / and % truncate toward zero: -7/2 == -3 and -7%2 == -1. ExtGCD relies
//	on exactly this convention for the Bézout identity a·x + b·y = g to hold
//	on negative inputs; the package tests assert it explicitly.
//
// Overflow:
//
//	ModPow and MulMod multiply through a 128-bit intermediate (math/bits), so
//	any positive modulus representable in the operand type is safe. ExtGCD,
//	GCD and LCM operate in the operand type; the minimum value of a signed
//	type has no positive counterpart and is not supported.
package numtheory
