package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/valuekit/pkg/numfmt"
	"github.com/dmitrymomot/valuekit/pkg/strutil"
)

func currencyCmd(a *app) *cobra.Command {
	var (
		symbol   string
		trailing bool
		fraction int
		fallback string
	)
	cmd := &cobra.Command{
		Use:   "currency <amount>",
		Short: "Render a currency amount",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []numfmt.CurrencyOption{
				numfmt.Symbol(a.settings.CurrencySymbol),
				numfmt.SymbolTrailing(a.settings.CurrencyTrailing),
				numfmt.MinimumFractionDigits(fraction),
				numfmt.Fallback(fallback),
			}
			if cmd.Flags().Changed("symbol") {
				opts = append(opts, numfmt.Symbol(symbol))
			}
			if cmd.Flags().Changed("trailing") {
				opts = append(opts, numfmt.SymbolTrailing(trailing))
			}

			var out string
			if n, ok := strutil.ToInt(args[0]).Get(); ok {
				out = numfmt.CurrencyWith(a.numbers, n, opts...)
			} else if v, ok := strutil.ToFloat(args[0]).Get(); ok {
				out = numfmt.CurrencyWith(a.numbers, v, opts...)
			} else {
				return fmt.Errorf("%w: amount %q", ErrInvalidArgument, args[0])
			}

			if out == "" {
				return fmt.Errorf("%w: amount %q", ErrConversion, args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&symbol, "symbol", "", "currency symbol (default from VALUEKIT_CURRENCY_SYMBOL)")
	cmd.Flags().BoolVar(&trailing, "trailing", true, "place the symbol after the amount; --trailing=false puts it first (default from VALUEKIT_CURRENCY_TRAILING)")
	cmd.Flags().IntVar(&fraction, "min-fraction", 0, "number of fraction digits")
	cmd.Flags().StringVar(&fallback, "fallback", "", "text printed when the amount cannot be formatted")
	return cmd
}
