package value

// CharRange is an inclusive range of Unicode code points.
type CharRange struct {
	Lo, Hi rune
}

// size returns the number of code points covered by the range.
func (r CharRange) size() int64 {
	return int64(r.Hi) - int64(r.Lo) + 1
}

// DefaultCharRanges is the char set RandomLengthString uses when no
// explicit ranges are supplied: printable ASCII letters and digits.
var DefaultCharRanges = []CharRange{
	{Lo: '0', Hi: '9'},
	{Lo: 'A', Hi: 'Z'},
	{Lo: 'a', Hi: 'z'},
}
