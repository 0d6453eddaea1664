package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/calendrical/internal/database"
	"github.com/zapponejosh/calendrical/internal/geometry"
)

func (a *app) analyzeCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "analyze CODE...",
		Short: "Reduce a code sequence and print its quasi-affine form",
		Example: `  calendrical analyze 365 365 365 366
  calendrical analyze 31,30,31,30,31,31,30,31,30,31,31 --save`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes, err := parseCodes(args)
			if err != nil {
				return err
			}

			analysis, err := geometry.Analyze(codes)
			if err != nil {
				return err
			}
			rec := database.NewAnalysis(analysis)

			if save {
				if err := a.saveAnalysis(cmd, rec); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if a.jsonOutput {
				return writeJSON(out, rec)
			}

			fmt.Fprintf(out, "%-10s %v\n", "codes", analysis.Input())
			for i, step := range analysis.Steps {
				fmt.Fprintf(out, "%-10s %v -> %v\n", fmt.Sprintf("step %d", i+1), step, analysis.Codes[i+1])
			}
			fmt.Fprintf(out, "%-10s %v\n", "terminal", analysis.Terminal())
			if form, ok := analysis.Form(); ok {
				fmt.Fprintf(out, "%-10s %v\n", "form", form)
			} else {
				fmt.Fprintf(out, "%-10s none, not a digital straight line segment\n", "form")
			}
			if save {
				fmt.Fprintf(out, "%-10s %d\n", "saved", rec.ID)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "store the analysis in the database")
	return cmd
}

func (a *app) saveAnalysis(cmd *cobra.Command, rec *database.Analysis) error {
	db, err := a.openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.SaveAnalysis(cmd.Context(), rec)
	return err
}

// openDB opens the configured database and brings its schema up to date.
func (a *app) openDB(ctx context.Context) (*database.DB, error) {
	db, err := database.Open(database.DefaultConfig(a.cfg.DatabasePath), a.log)
	if err != nil {
		return nil, err
	}
	if _, err := db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// parseCodes reads codes given as separate arguments, comma separated
// lists, or both.
func parseCodes(args []string) ([]int, error) {
	var codes []int
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			n, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("code %q: %w", field, err)
			}
			codes = append(codes, n)
		}
	}
	return codes, nil
}
