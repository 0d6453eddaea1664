package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/calendrical/internal/calendar"
	"github.com/zapponejosh/calendrical/internal/config"
	"github.com/zapponejosh/calendrical/internal/logger"
)

// app carries what every subcommand needs once the root command has loaded
// the configuration.
type app struct {
	cfg *config.Config
	log *slog.Logger

	logLevel   string
	jsonOutput bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "calendrical",
		Short: "Quasi-affine forms and calendar arithmetic",
		Long: `calendrical reduces sequences of codes to the quasi-affine form that
generates them, and uses such forms to convert dates between calendars.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if a.logLevel != "" {
				cfg.LogLevel = a.logLevel
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg
			a.log = logger.SetupWriter(cfg, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "print results as JSON")

	root.AddCommand(
		a.analyzeCmd(),
		a.calendarsCmd(),
		a.dateCmd(),
		a.dayCmd(),
		a.convertCmd(),
		a.easterCmd(),
		a.importCmd(),
		a.serveCmd(),
	)
	return root
}

func (a *app) catalog() (*calendar.Catalog, error) {
	return calendar.NewCatalog(a.log)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
