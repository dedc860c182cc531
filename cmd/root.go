package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "weibot",
		Short:         "weibot: monitor feed accounts and auto-reply to new posts",
		Long:          "weibot watches a configured set of feed accounts for newly published posts, generates a reply for each through an external text-generation service, and submits it as a comment.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newStatusCmd(app),
		newAccountCmd(app),
	)

	return rootCmd
}
