package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/skillcoder/autoscale-bootstrap/internal/app"
	"github.com/skillcoder/autoscale-bootstrap/internal/config"
	"github.com/skillcoder/autoscale-bootstrap/internal/infra/appstate"
	"github.com/skillcoder/autoscale-bootstrap/internal/infra/logging"
	"github.com/skillcoder/autoscale-bootstrap/internal/logic/bootstrap"
)

const usageExamples = `  autoscale-bootstrap --image nginx:latest --name demo
  autoscale-bootstrap --image nginx:latest --name demo --namespace apps --replicas 3
  autoscale-bootstrap --image nginx:latest --name demo --dry-run`

// newRootCommand builds the CLI. Errors raised before the command body runs, such
// as unknown flags or a missing --image, are reported as invalid input.
func newRootCommand(signals <-chan os.Signal, appStart time.Time) *cobra.Command {
	cfg, loadErr := config.Load()
	if cfg == nil {
		cfg = &config.Config{}
	}

	cmd := &cobra.Command{
		Use:           "autoscale-bootstrap",
		Short:         "Install KEDA and deploy an autoscaled workload",
		Long:          "Ensures KEDA is installed via helm, then creates a Deployment, a NodePort Service and a ScaledObject for the workload unless they already exist.",
		Example:       usageExamples,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			return invalidInput(cobra.NoArgs(cmd, args))
		},
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return invalidInput(cmd.ValidateRequiredFlags())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			if loadErr != nil {
				return fmt.Errorf("%w: load config: %w", bootstrap.ErrInvalidInput, loadErr)
			}

			err := cfg.Validate()
			if err != nil {
				return err
			}

			logger := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
			appState := appstate.New(logger, appStart, signals)

			logger.InfoContext(cmd.Context(), "starting bootstrap",
				"name", cfg.Name,
				"namespace", cfg.Namespace,
				"image", cfg.Image,
				"replicas", cfg.Replicas,
				"dryRun", cfg.DryRun,
			)

			return app.New(cfg, logger, appState, cmd.OutOrStdout()).Run(cmd.Context())
		},
	}

	cfg.BindFlags(cmd.Flags())

	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("name")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return invalidInput(err)
	})

	return cmd
}

func invalidInput(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", bootstrap.ErrInvalidInput, err)
}
