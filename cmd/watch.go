package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/petition-tracker/internal/adapters/render/chart"
	"github.com/bnema/petition-tracker/internal/application"
)

func newWatchCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Manage saved petition views",
	}

	cmd.AddCommand(
		newWatchListCmd(app),
		newWatchAddCmd(app),
		newWatchRemoveCmd(app),
	)

	return cmd
}

func newWatchListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved views",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views, err := app.service.Watched(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			rendered, err := app.renderViews(views, chart.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render views: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newWatchAddCmd(app *app) *cobra.Command {
	var flags detailFlags
	var name string

	cmd := &cobra.Command{
		Use:   "add ID",
		Short: "Save a view of a petition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePetitionID(args[0])
			if err != nil {
				return err
			}
			window, _, err := flags.window()
			if err != nil {
				return err
			}
			selections, err := flags.selections()
			if err != nil {
				return err
			}
			if err := app.connect(cmd.Context()); err != nil {
				return err
			}

			view, err := app.service.Watch(cmd.Context(), application.WatchCommand{
				PetitionID: id,
				Name:       name,
				Window:     window,
				Selections: selections,
				ShowTotal:  flags.total,
			})
			if err != nil {
				return petitionNotFound(id, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "watching petition %s: %s\n", view.PetitionID, view.DisplayName())
			return err
		},
	}

	addDetailFlags(cmd, &flags)
	cmd.Flags().StringVar(&name, "name", "", "Display name (default: the petition's action)")

	return cmd
}

func newWatchRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Forget the saved view of a petition",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parsePetitionID(args[0])
			if err != nil {
				return err
			}

			if err := app.service.Unwatch(cmd.Context(), id); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "stopped watching petition %s\n", id)
			return err
		},
	}
}
