package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tetris-stack",
		Short:         "Tetris Stack: manage the upcoming-piece queue and reserve stack",
		Long:          "tetris-stack keeps a fixed rotation of upcoming pieces in a circular queue and lets you play, reserve and swap them against a small reserve stack.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app := wireApp()
	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (default $HOME/.tetris-stack/config.toml)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
