package rangecache

// Integer is the set of element types a RangeCache can sum.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// SumFunc returns the sum of values[left..right], both ends inclusive.
// Bounds are validated before it is called.
type SumFunc[T Integer] func(values []T, left, right int) T

// LinearSum adds the elements one by one. It is the default SumFunc.
func LinearSum[T Integer](values []T, left, right int) T {
	var sum T
	for _, v := range values[left : right+1] {
		sum += v
	}
	return sum
}
