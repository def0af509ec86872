package gameclock

// Values returned by SelectByParity
const (
	EvenValue = 2
	OddValue  = 3
)

// SelectByParity returns EvenValue when the display seconds are even and
// OddValue when they are odd. The low bit of the seconds component is the
// only input; hours and minutes are ignored.
func SelectByParity(d DisplayTime) int {
	if d.Seconds&1 == 0 {
		return EvenValue
	}
	return OddValue
}
