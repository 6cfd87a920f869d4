package locale

import (
	"errors"
	"time"

	"golang.org/x/text/language"
)

// Host is the Service backed by the real clock, a configured time zone and
// the CLDR data shipped with golang.org/x/text.
type Host struct {
	tag language.Tag
	loc *time.Location
	now func() time.Time
}

// Option configures New.
type Option func(*hostConfig)

type hostConfig struct {
	locale   string
	timezone string
	now      func() time.Time
}

// WithLocale sets the default BCP 47 tag. Empty values are ignored.
func WithLocale(tag string) Option {
	return func(c *hostConfig) {
		if tag != "" {
			c.locale = tag
		}
	}
}

// WithTimezone sets the IANA zone used as local time. Empty means time.Local.
func WithTimezone(name string) Option {
	return func(c *hostConfig) {
		c.timezone = name
	}
}

// WithNow overrides the clock. Nil functions are ignored.
func WithNow(now func() time.Time) Option {
	return func(c *hostConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// New builds a Host from options.
func New(opts ...Option) (*Host, error) {
	cfg := &hostConfig{
		locale: DefaultLocale,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	tag, err := ParseTag(cfg.locale)
	if err != nil {
		return nil, err
	}

	loc := time.Local
	if cfg.timezone != "" {
		loc, err = time.LoadLocation(cfg.timezone)
		if err != nil {
			return nil, errors.Join(ErrInvalidTimezone, err)
		}
	}

	return &Host{tag: tag, loc: loc, now: cfg.now}, nil
}

// Default returns a Host for DefaultLocale in the process time zone.
func Default() *Host {
	return &Host{
		tag: language.MustParse(DefaultLocale),
		loc: time.Local,
		now: time.Now,
	}
}

func (h *Host) Now() time.Time { return h.now() }

func (h *Host) Location() *time.Location { return h.loc }

// Tag returns the default language tag.
func (h *Host) Tag() language.Tag { return h.tag }

func (h *Host) FormatDecimal(value any, opts DecimalOptions) (string, error) {
	return formatDecimal(h.tag, value, opts)
}
