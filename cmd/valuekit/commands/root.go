package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valuekit/pkg/clock"
	"github.com/dmitrymomot/valuekit/pkg/config"
	"github.com/dmitrymomot/valuekit/pkg/locale"
	"github.com/dmitrymomot/valuekit/pkg/logger"
	"github.com/dmitrymomot/valuekit/pkg/numfmt"
)

// app holds flag values and the dependencies built from them.
type app struct {
	envFile  string
	locale   string
	timezone string
	logLevel string

	settings config.Settings
	log      *slog.Logger
	numbers  *numfmt.Formatter
	clock    *clock.Converter
}

func (a *app) setup(cmd *cobra.Command) error {
	var files []string
	if a.envFile != "" {
		files = append(files, a.envFile)
	}
	settings, err := config.LoadSettings(files...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("locale") {
		settings.Locale = a.locale
	}
	if flags.Changed("timezone") {
		settings.Timezone = a.timezone
	}
	if flags.Changed("log-level") {
		settings.LogLevel = a.logLevel
	}
	a.settings = settings

	a.log = logger.New(
		logger.WithLevel(logger.ParseLevel(settings.LogLevel)),
		logger.WithFormat(logger.ParseFormat(settings.LogFormat)),
		logger.WithOutput(cmd.ErrOrStderr()),
	)

	host, err := locale.New(
		locale.WithLocale(settings.Locale),
		locale.WithTimezone(settings.Timezone),
	)
	if err != nil {
		return err
	}
	a.log.Debug("settings loaded",
		logger.Locale(settings.Locale),
		slog.String("timezone", host.Location().String()),
	)

	a.numbers = numfmt.New(numfmt.WithService(host), numfmt.WithLogger(a.log))
	a.clock = clock.NewConverter(clock.WithService(host), clock.WithLogger(a.log))
	return nil
}

// NewRootCmd builds the valuekit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "valuekit",
		Short:         "Format, convert and validate everyday values",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", "", ".env file to load (default ./.env if present)")
	root.PersistentFlags().StringVar(&a.locale, "locale", locale.DefaultLocale, "BCP 47 locale for number formatting")
	root.PersistentFlags().StringVar(&a.timezone, "timezone", "", "IANA time zone (default host local zone)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	root.AddCommand(
		sizeCmd(),
		clockCmd(),
		utcCmd(a),
		emailCmd(),
		substrCmd(),
		groupCmd(a),
		currencyCmd(a),
		toMapCmd(),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
