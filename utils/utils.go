package utils

import "golang.org/x/exp/constraints"

func GetZero[T any]() T {
	var result T
	return result
}

// Mod is the mathematical modulo: the result is always in [0, m) for m > 0,
// unlike the % operator which keeps the sign of a.
func Mod[T constraints.Integer](a, m T) T {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
