package cli

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/spf13/cobra"
)

func newQuoteCmd(app *App) *cobra.Command {
	var party partyFlags

	cmd := &cobra.Command{
		Use:   "quote ACTIVITY_ID",
		Short: "Price one activity for a party and check whether it can be booked",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Quotes.Quote(cmd.Context(), contract.QuoteRequest{
				ActivityID: args[0],
				Party:      party.request(cmd),
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatQuote(resp))
			return nil
		},
	}

	party.register(cmd)
	return cmd
}
