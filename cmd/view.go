package cmd

import (
	"github.com/spf13/cobra"

	"github.com/bnema/petition-tracker/internal/adapters/tui/detail"
)

func newViewCmd(app *app) *cobra.Command {
	var flags detailFlags

	cmd := &cobra.Command{
		Use:   "view ID",
		Short: "Explore a petition's chart interactively",
		Long:  "Open an interactive chart of a petition. Type help in the prompt for the commands that add or remove locales, change the window and save the view.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePetitionID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			opts, err := flags.loadOptions(ctx, app, id)
			if err != nil {
				return err
			}
			if err := app.connect(ctx); err != nil {
				return err
			}

			return app.runInteractive(ctx, app.newDetailView(), detail.Options{
				PetitionID: id,
				Load:       opts,
				Saver:      app.service,
				Timeout:    app.settings.API.Timeout,
				Now:        app.now,
			}, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addDetailFlags(cmd, &flags)

	return cmd
}
