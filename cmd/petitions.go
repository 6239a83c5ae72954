package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/petition-tracker/internal/adapters/render/chart"
	"github.com/bnema/petition-tracker/internal/domain"
)

func newPetitionsCmd(app *app) *cobra.Command {
	var state string
	var page int
	var items int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "petitions",
		Short: "List tracked petitions, most signed first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedState, err := domain.ParsePetitionState(state)
			if err != nil {
				return err
			}
			if page < 1 {
				return fmt.Errorf("--page must be at least 1")
			}

			if err := app.connect(cmd.Context()); err != nil {
				return err
			}

			query := domain.PetitionListQuery{
				State: parsedState,
				Index: page - 1,
				Items: items,
			}
			var result domain.PetitionPage
			list := func(ctx context.Context) error {
				listed, err := app.service.ListPetitions(ctx, query)
				result = listed
				return err
			}
			if asJSON {
				err = list(cmd.Context())
			} else {
				err = runFetchSpinner(cmd.Context(), cmd.ErrOrStderr(), listFetchJob(query, list))
			}
			if err != nil {
				return fmt.Errorf("list petitions: %w", err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			rendered, err := app.renderList(result, chart.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render petitions: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&state, "state", "open", "Petition state: open, closed, rejected or all")
	cmd.Flags().IntVar(&page, "page", 1, "Page number, starting at 1")
	cmd.Flags().IntVar(&items, "items", domain.DefaultPageItems, "Petitions per page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
