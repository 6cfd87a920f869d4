package clock

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/valuekit/pkg/locale"
	"github.com/dmitrymomot/valuekit/pkg/logger"
	"github.com/dmitrymomot/valuekit/pkg/optional"
)

const timeOfDayLayout = "15:04"

// TimeOfDay is an hour and minute pair as written by the caller. Values are
// not range-checked; out-of-range fields roll over like calendar arithmetic.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay reads the first two ':'-separated integer fields of s.
// Extra fields are ignored.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	fields := strings.Split(s, ":")
	if len(fields) < 2 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}

	hour, err := strconv.Atoi(fields[0])
	if err != nil {
		return TimeOfDay{}, errors.Join(ErrInvalidTimeOfDay, err)
	}
	minute, err := strconv.Atoi(fields[1])
	if err != nil {
		return TimeOfDay{}, errors.Join(ErrInvalidTimeOfDay, err)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// On anchors t onto the calendar date of day in loc.
func (t TimeOfDay) On(day time.Time, loc *time.Location) time.Time {
	local := day.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), t.Hour, t.Minute, 0, 0, loc)
}

// Converter projects local times of day to UTC using a locale.Service for
// "today" and "local". It is immutable and safe for concurrent use.
type Converter struct {
	svc locale.Service
	log *slog.Logger
}

// ConverterOption configures a Converter.
type ConverterOption func(*Converter)

// WithService sets the source of the current date and local zone. Nil values are ignored.
func WithService(svc locale.Service) ConverterOption {
	return func(c *Converter) {
		if svc != nil {
			c.svc = svc
		}
	}
}

// WithLogger sets the logger used to report rejected input. Nil values are ignored.
func WithLogger(l *slog.Logger) ConverterOption {
	return func(c *Converter) {
		if l != nil {
			c.log = l
		}
	}
}

// NewConverter builds a Converter backed by locale.Default() unless configured otherwise.
func NewConverter(opts ...ConverterOption) *Converter {
	c := &Converter{
		svc: locale.Default(),
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With(logger.Component("clock"))
	return c
}

// LocalTimeToUTC converts "HH:MM" in the service's local zone, on the
// service's current date, to "HH:MM" in UTC. Malformed input yields None.
func (c *Converter) LocalTimeToUTC(timeOfDay string) optional.Option[string] {
	tod, err := ParseTimeOfDay(timeOfDay)
	if err != nil {
		c.log.Debug("time of day rejected", logger.Input(timeOfDay), logger.Error(err))
		return optional.None[string]()
	}

	local := tod.On(c.svc.Now(), c.svc.Location())
	return optional.Some(local.UTC().Format(timeOfDayLayout))
}

var defaultConverter = NewConverter()

// LocalTimeToUTC converts with the process clock and local zone.
// See Converter.LocalTimeToUTC.
func LocalTimeToUTC(timeOfDay string) optional.Option[string] {
	return defaultConverter.LocalTimeToUTC(timeOfDay)
}
