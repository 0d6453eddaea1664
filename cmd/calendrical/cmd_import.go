package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zapponejosh/calendrical/internal/database"
	"github.com/zapponejosh/calendrical/internal/geometry"
)

// importFile is the JSON layout read by the import command:
//
//	{"sequences": [{"name": "julian years", "codes": [365, 365, 365, 366]}]}
type importFile struct {
	Sequences []struct {
		Name  string `json:"name"`
		Codes []int  `json:"codes"`
	} `json:"sequences"`
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Analyze every sequence of a JSON file and store the results",
		Long: `import reads {"sequences": [{"name": ..., "codes": [...]}]} from FILE,
analyzes every sequence and stores all analyses in a single transaction.
Sequences already stored are updated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			start := time.Now()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			var file importFile
			if err := json.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("parse import file: %w", err)
			}

			// Analyze everything before touching the database so that a bad
			// sequence leaves it unchanged.
			records := make([]*database.Analysis, 0, len(file.Sequences))
			for i, seq := range file.Sequences {
				analysis, err := geometry.Analyze(seq.Codes)
				if err != nil {
					return fmt.Errorf("sequence %d (%s): %w", i, seq.Name, err)
				}
				a.log.Debug("analyzed sequence",
					slog.String("name", seq.Name),
					slog.Bool("successful", analysis.Successful()),
					slog.Int("steps", len(analysis.Steps)),
				)
				records = append(records, database.NewAnalysis(analysis))
			}

			db, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			var created, updated int
			err = db.WithTx(ctx, func(tx *database.Tx) error {
				for _, rec := range records {
					isNew, err := tx.SaveAnalysis(ctx, rec)
					if err != nil {
						return err
					}
					if isNew {
						created++
					} else {
						updated++
					}
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}

			a.log.Info("import complete",
				slog.Int("created", created),
				slog.Int("updated", updated),
				slog.Duration("duration", time.Since(start)),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d sequences: %d created, %d updated\n",
				len(records), created, updated)
			return nil
		},
	}
}
