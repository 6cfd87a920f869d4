// Package clock converts durations in seconds to clock strings and projects
// "HH:MM" times of day from local time to UTC.
//
//	clock.SecondsToClock(3661) // "01:01:01"
//	clock.SecondsToClock(90)   // "01:30"
//
// Hours are never reduced modulo 24: SecondsToClock(90000) is "25:00:00".
//
// # Local time to UTC
//
// LocalTimeToUTC anchors a bare "HH:MM" onto today's date in the local zone
// and converts that instant to UTC. The result therefore depends on the
// current date and on the zone's offset on that date (daylight saving
// included); it is not a pure function of its input. Converter takes a
// locale.Service so tests can pin both:
//
//	c := clock.NewConverter(clock.WithService(locale.Fixed{
//	    At:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
//	    Zone: time.FixedZone("MMT", 6*3600+30*60),
//	}))
//	c.LocalTimeToUTC("14:00") // Some("07:30")
//
// # Error handling
//
// LocalTimeToUTC returns an empty optional.Option for malformed input.
// ParseTimeOfDay is the strict variant and reports ErrInvalidTimeOfDay.
package clock
