package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/luoyen/weibot/internal/adapters/ark"
	"github.com/luoyen/weibot/internal/adapters/audit"
	"github.com/luoyen/weibot/internal/adapters/creds"
	"github.com/luoyen/weibot/internal/adapters/repo/configfile"
	"github.com/luoyen/weibot/internal/adapters/repo/statefile"
	"github.com/luoyen/weibot/internal/adapters/weibo"
	"github.com/luoyen/weibot/internal/application"
	"github.com/luoyen/weibot/internal/ports"
)

const configTemplate = `{
  "uid": {
    "1234567890": "1",
    "0987654321": "0"
  },
  "prompt": "",
  "sleep_time": 60
}
`

const cookieTemplate = `{
  "Cookie": "your_weibo_cookie_here",
  "User-Agent": "your_user_agent_here"
}
`

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the monitoring loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEngine(cmd.Context(), app)
		},
	}
}

func runEngine(ctx context.Context, app *app) error {
	created, err := ensureTemplates(app)
	if err != nil {
		return err
	}
	if created {
		return fmt.Errorf("template files written under %s: fill in config.json and weibo_cookie.json, then rerun", app.baseDir)
	}

	apiKey := os.Getenv("ARK_API_KEY")
	if apiKey == "" {
		return errors.New("ARK_API_KEY environment variable is not set")
	}

	store, err := configfile.NewStore(app.configPath, app.logger)
	if err != nil {
		return fmt.Errorf("open config store: %w", err)
	}
	defer func() { _ = store.Close() }()

	states, err := statefile.NewRepository(app.stateDir)
	if err != nil {
		return fmt.Errorf("open state repository: %w", err)
	}

	feed := weibo.NewClient(
		envOrDefault("WEIBOT_BASE_URL", app.settings.WeiboBaseURL),
		creds.NewFileSource(app.cookiePath),
		app.logger,
		app.settings.HTTPTimeout,
	)

	generator, err := ark.NewGenerator(ark.Config{
		BaseURL: envOrDefault("ARK_BASE_URL", app.settings.GeneratorBaseURL),
		Model:   envOrDefault("ARK_MODEL", app.settings.GeneratorModel),
		APIKey:  apiKey,
		Prompt:  store.Prompt(),
		Timeout: app.settings.HTTPTimeout,
	}, app.logger)
	if err != nil {
		return fmt.Errorf("wire reply generator: %w", err)
	}

	auditor := audit.NewSlogAuditor(app.logger)
	clock := ports.SystemClock{}
	resolver := application.NewNameResolver(feed, auditor)
	poller := application.NewPoller(feed, states, store, auditor, clock, application.PollerConfig{
		Lookback: app.settings.Lookback,
		Pacing:   app.settings.Pacing,
	})
	pipeline := application.NewPipeline(feed, generator, auditor)
	scheduler := application.NewScheduler(store, store, resolver, poller, pipeline, auditor, clock, application.SchedulerOptions{
		DefaultInterval: app.settings.SleepDefault,
		Cooldown: application.Backoff{
			Min: app.settings.CooldownMin,
			Max: app.settings.CooldownMax,
		},
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := scheduler.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// ensureTemplates writes starter config and credential files on first run
// so an operator has something concrete to fill in.
func ensureTemplates(app *app) (bool, error) {
	created := false

	for path, content := range map[string]string{
		app.configPath: configTemplate,
		app.cookiePath: cookieTemplate,
	} {
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !errors.Is(err, os.ErrNotExist) {
			return false, fmt.Errorf("stat %s: %w", path, err)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return false, fmt.Errorf("create config directory: %w", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			return false, fmt.Errorf("write template %s: %w", path, err)
		}
		created = true
	}

	return created, nil
}
