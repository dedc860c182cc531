package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luoyen/weibot/internal/adapters/repo/configfile"
	"github.com/luoyen/weibot/internal/domain"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage tracked accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountAddCmd(app),
		newAccountEnableCmd(app),
		newAccountDisableCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tracked accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openConfigStore(app)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			accounts, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			for _, account := range accounts {
				flag := "disabled"
				if account.Enabled {
					flag = "enabled"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", account.ID, flag)
			}

			return nil
		},
	}
}

func newAccountAddCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <uid>",
		Short: "Track a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openConfigStore(app)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return store.Add(cmd.Context(), domain.AccountID(args[0]), true)
		},
	}
}

func newAccountEnableCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "enable <uid>",
		Short: "Re-enable a tracked account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openConfigStore(app)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return store.SetEnabled(cmd.Context(), domain.AccountID(args[0]), true)
		},
	}
}

func newAccountDisableCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "disable <uid>",
		Short: "Disable a tracked account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openConfigStore(app)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			return store.SetEnabled(cmd.Context(), domain.AccountID(args[0]), false)
		},
	}
}

func openConfigStore(app *app) (*configfile.Store, error) {
	store, err := configfile.NewStore(app.configPath, app.logger)
	if err != nil {
		return nil, fmt.Errorf("open config store: %w", err)
	}
	return store, nil
}
