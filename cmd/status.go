package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	statusadapter "github.com/luoyen/weibot/internal/adapters/render/status"
	"github.com/luoyen/weibot/internal/adapters/repo/configfile"
	"github.com/luoyen/weibot/internal/adapters/repo/statefile"
	"github.com/luoyen/weibot/internal/domain"
)

func newStatusCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show tracked accounts and their monitoring state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := configfile.NewStore(app.configPath, app.logger)
			if err != nil {
				return fmt.Errorf("open config store: %w", err)
			}
			defer func() { _ = store.Close() }()

			states, err := statefile.NewRepository(app.stateDir)
			if err != nil {
				return fmt.Errorf("open state repository: %w", err)
			}

			accounts, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			rows := make([]statusadapter.Row, 0, len(accounts))
			for _, account := range accounts {
				row := statusadapter.Row{Account: account}

				state, err := states.Get(cmd.Context(), account.ID)
				if err != nil && !errors.Is(err, domain.ErrStateNotFound) {
					return err
				}
				if err == nil {
					row.Nickname = state.Nickname
					row.HasState = true
					row.Processed = len(state.Processed)
					row.MaxID = state.MaxID
				}

				rows = append(rows, row)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), statusadapter.Render(rows))
			return err
		},
	}
}
