package util

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Max returns the largest argument. A NaN anywhere in args is returned as is
// so callers can detect it instead of silently dropping it.
func Max[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	max := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg > max {
			max = arg
		}
	}
	return max
}

func Min[T cmp.Ordered](args ...T) T {
	if len(args) == 0 {
		return *new(T)
	}

	if isNan(args[0]) {
		return args[0]
	}

	min := args[0]
	for _, arg := range args[1:] {

		if isNan(arg) {
			return arg
		}

		if arg < min {
			min = arg
		}
	}
	return min
}

// Clamp limits v to [lo, hi]. NaN maps to lo.
func Clamp[T constraints.Float](v T, lo T, hi T) T {
	if isNan(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InRange reports whether lo <= v < hi. NaN is never in range.
func InRange[T constraints.Float](v T, lo T, hi T) bool {
	return v >= lo && v < hi
}

func isNan[T comparable](arg T) bool {
	return arg != arg
}
