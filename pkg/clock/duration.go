package clock

import (
	"fmt"

	"github.com/dmitrymomot/valuekit/pkg/optional"
)

// Components is a duration split into zero-padded clock fields.
type Components struct {
	// Hours is present only when the duration has at least one full hour.
	Hours   optional.Option[string]
	Minutes string
	Seconds string
}

// String joins the components with ':' the same way SecondsToClock does.
func (c Components) String() string {
	if h, ok := c.Hours.Get(); ok {
		return h + ":" + c.Minutes + ":" + c.Seconds
	}
	return c.Minutes + ":" + c.Seconds
}

func split(total int64) (hours, minutes, seconds int64) {
	return total / 3600, total / 60 % 60, total % 60
}

// Pad renders n zero-padded to width digits.
func Pad(n int64, width int) string {
	return fmt.Sprintf("%0*d", width, n)
}

// SecondsToClock renders total seconds as "HH:MM:SS", or "MM:SS" when there
// is no full hour.
func SecondsToClock(total int64) string {
	return SecondsToComponents(total).String()
}

// SecondsToMinutes renders total seconds as "MM:SS", dropping whole hours.
func SecondsToMinutes(total int64) string {
	_, m, s := split(total)
	return Pad(m, 2) + ":" + Pad(s, 2)
}

// SecondsToComponents splits total seconds into clock fields.
func SecondsToComponents(total int64) Components {
	h, m, s := split(total)

	c := Components{
		Minutes: Pad(m, 2),
		Seconds: Pad(s, 2),
	}
	if h > 0 {
		c.Hours = optional.Some(Pad(h, 2))
	}
	return c
}
