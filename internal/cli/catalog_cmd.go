package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/alexanderramin/itinera/internal/repository"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Import and browse accommodations and activities",
	}

	cmd.AddCommand(
		newCatalogImportCmd(app),
		newCatalogAccommodationsCmd(app),
		newCatalogActivitiesCmd(app),
		newCatalogShowCmd(app),
	)

	return cmd
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Validate a catalog JSON file and load it in one transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Catalog.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImport(res.Import))
			return nil
		},
	}
}

func newCatalogAccommodationsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "accommodations",
		Aliases: []string{"stays"},
		Short:   "List accommodations",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			accs, err := app.Catalog.ListAccommodations(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAccommodations(accs))
			return nil
		},
	}
}

func newCatalogActivitiesCmd(app *App) *cobra.Command {
	var categoryStr string

	cmd := &cobra.Command{
		Use:   "activities",
		Short: "List activities grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var category *domain.ActivityCategory
			if categoryStr != "" {
				c, err := domain.ParseCategory(categoryStr)
				if err != nil {
					return err
				}
				category = &c
			}

			acts, err := app.Catalog.ListActivities(cmd.Context(), category)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivities(acts))
			return nil
		},
	}

	cmd.Flags().StringVar(&categoryStr, "category", "", "Only this category (mais_procurados, experiencias, maritimos, quadriciclos, privativos, pacotes, transfers)")
	_ = cmd.RegisterFlagCompletionFunc("category", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		names := make([]string, len(domain.Categories))
		for i, c := range domain.Categories {
			names[i] = string(c)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one activity or accommodation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id := args[0]

			a, err := app.Catalog.GetActivity(ctx, id)
			if err == nil {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivityDetail(a))
				return nil
			}
			if !errors.Is(err, repository.ErrNotFound) {
				return err
			}

			acc, err := app.Catalog.GetAccommodation(ctx, id)
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("nothing in the catalog with id %q", id)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAccommodationDetail(acc))
			return nil
		},
	}
}
