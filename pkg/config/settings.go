package config

// Settings holds the defaults shared by the formatting packages and the CLI.
type Settings struct {
	// Locale is a BCP 47 tag used for number formatting.
	Locale string `env:"VALUEKIT_LOCALE" envDefault:"en-US"`
	// Timezone is an IANA zone name. Empty means the host local zone.
	Timezone string `env:"VALUEKIT_TIMEZONE"`

	CurrencySymbol   string `env:"VALUEKIT_CURRENCY_SYMBOL" envDefault:"$"`
	CurrencyTrailing bool   `env:"VALUEKIT_CURRENCY_TRAILING" envDefault:"true"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// LoadSettings reads Settings from the environment and envFiles.
func LoadSettings(envFiles ...string) (Settings, error) {
	var s Settings
	if err := Load(&s, envFiles...); err != nil {
		return Settings{}, err
	}
	return s, nil
}
