package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/petition-tracker/internal/adapters/render/chart"
	"github.com/bnema/petition-tracker/internal/domain"
)

func newPetitionCmd(app *app) *cobra.Command {
	var flags detailFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "petition ID",
		Short: "Chart the signatures of one petition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePetitionID(args[0])
			if err != nil {
				return err
			}

			return runPetition(cmd, app, id, flags, asJSON)
		},
	}

	addDetailFlags(cmd, &flags)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runPetition(cmd *cobra.Command, app *app, id domain.PetitionID, flags detailFlags, asJSON bool) error {
	ctx := cmd.Context()
	opts, err := flags.loadOptions(ctx, app, id)
	if err != nil {
		return err
	}
	if err := app.connect(ctx); err != nil {
		return err
	}

	view := app.newDetailView()
	load := func(ctx context.Context) error {
		return view.Load(ctx, id, opts)
	}

	if asJSON {
		err = load(ctx)
	} else {
		err = runFetchSpinner(ctx, cmd.ErrOrStderr(), petitionFetchJob(id, opts, load))
	}
	if err != nil {
		return petitionNotFound(id, err)
	}

	snapshot := view.Snapshot()
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(snapshot)
	}

	rendered, err := app.renderDetail(snapshot, chart.RenderOptions{Now: app.now()})
	if err != nil {
		return fmt.Errorf("render petition: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
