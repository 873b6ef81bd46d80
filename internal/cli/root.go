package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danielgomezobraztsov/web-presentation/internal/infra/config"
	"github.com/danielgomezobraztsov/web-presentation/internal/infra/logger"
	"github.com/danielgomezobraztsov/web-presentation/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool
	var cleanup func() error

	cmd := &cobra.Command{
		Use:          "webpres",
		Short:        "webpres: application controller and two-step view demos",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			logRoot := ""
			if root, ferr := config.NewFinder().FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			// webpres.yaml sets the default; an explicit --debug wins.
			logDebug := debug
			if logRoot != "" && !cmd.Flags().Changed("debug") {
				if cfg, cerr := config.Load(logRoot); cerr == nil {
					logDebug = cfg.Log.Debug
				}
			}

			// Outside a project, logs are only written when asked for.
			if logRoot == "" {
				if !logDebug {
					return nil
				}
				logRoot = wd
			}

			cleanup, _ = logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: logDebug,
			})
			debug = logDebug
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if cleanup != nil {
				return cleanup()
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp("")
			if err != nil {
				return err
			}

			return tui.Run(tui.Deps{
				Controller: app.controller,
				Renderer:   app.renderer,
				Logger:     logger.L(),
				Debug:      debug,
			})
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .webpres/logs/webpres.log")

	cmd.AddCommand(
		routeCmd(),
		renderCmd(),
		initCmd(),
		pagesCmd(),
		demoCmd(),
		versionCmd(),
	)
	return cmd
}
