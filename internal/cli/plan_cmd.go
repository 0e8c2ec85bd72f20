package cli

import (
	"fmt"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		arrival, departure, stay, file string
		view, interactive              bool
		party                          partyFlags
		days                           dayFlag
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Assemble and price a multi-day itinerary",
		Long: `Assemble a trip from flags, a JSON request file or an interactive wizard.

Activities are picked per day with repeated --day flags, e.g.
  itinera plan --arrival 2025-01-10 --departure 2025-01-13 --stay arraial_pousada \
    --adults 2 --children 1 --ages 7 --day 1=trancoso_dia --day 2=recife_fora,centro_historico_noite

Selections that cannot be booked are left out and listed on stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var req contract.PlanRequest
			switch {
			case interactive:
				if !app.interactive() {
					return fmt.Errorf("--interactive needs a terminal; use flags or --file instead")
				}
				wizardReq, err := runPlanWizard(ctx, app)
				if err != nil {
					return err
				}
				req = *wizardReq
			case file != "":
				fileReq, err := contract.LoadPlanRequest(file)
				if err != nil {
					return err
				}
				req = *fileReq
			default:
				req = contract.PlanRequest{
					Arrival:         arrival,
					Departure:       departure,
					AccommodationID: stay,
					Party:           party.request(cmd),
					Days:            days.days,
				}
			}

			resp, err := app.Plans.Plan(ctx, req)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if view {
				fmt.Fprint(out, formatter.FormatItineraryView(resp.Itinerary))
			} else {
				fmt.Fprintln(out, resp.Itinerary.GeneratedText)
			}
			fmt.Fprint(cmd.ErrOrStderr(), formatter.FormatRejected(resp.Rejected))
			return nil
		},
	}

	cmd.Flags().StringVar(&arrival, "arrival", "", "Arrival date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&departure, "departure", "", "Departure date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&stay, "stay", "", "Accommodation ID")
	party.register(cmd)
	cmd.Flags().Var(&days, "day", "Activities for one trip day as N=id[,id...]; repeatable")
	cmd.Flags().BoolVar(&view, "view", false, "Show the per-day table instead of the shareable text")
	cmd.Flags().StringVar(&file, "file", "", "Read the plan request from a JSON file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick dates, stay and activities in a wizard")
	cmd.MarkFlagsMutuallyExclusive("file", "interactive")

	return cmd
}
