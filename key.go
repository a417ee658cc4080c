package rangecache

import "strconv"

// Key identifies a cached range sum: the inclusive bounds [Left, Right].
type Key struct {
	Left  int
	Right int
}

// Covers reports whether index lies inside the range.
func (k Key) Covers(index int) bool {
	return k.Left <= index && index <= k.Right
}

// Len returns the number of elements in the range.
func (k Key) Len() int {
	return k.Right - k.Left + 1
}

func (k Key) String() string {
	return "[" + strconv.Itoa(k.Left) + ", " + strconv.Itoa(k.Right) + "]"
}
