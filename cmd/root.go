package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "pt",
		Short:         "Petition tracker (pt): chart UK parliament petition signatures",
		Long:          "pt (petition tracker) lists UK parliament petitions, charts their signature counts over time by country, region or constituency, and runs the poller and API server that record those counts.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRunE = func(_ *cobra.Command, _ []string) error {
		return app.prepare(verbose)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPetitionsCmd(app),
		newPetitionCmd(app),
		newViewCmd(app),
		newWatchCmd(app),
		newAuthCmd(app),
		newPollCmd(app),
		newServeCmd(app),
	)

	return rootCmd
}
