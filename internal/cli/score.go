package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dpshade/draftsmith/internal/errors"
	"github.com/dpshade/draftsmith/internal/models"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score [document.json]",
		Short: "Re-score a rendered document",
		Long:  `score reads a rendered document (as produced by 'render --json' or
'process --json') from a file or stdin and evaluates it against its
category's checklist. Re-scoring produces a fresh independent report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			var data []byte
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
				if err != nil {
					return errors.InvalidInputError(fmt.Sprintf("cannot read document: %v", err))
				}
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return errors.InvalidInputError(fmt.Sprintf("cannot read stdin: %v", err))
				}
			}

			var doc models.RenderedDocument
			if err := json.Unmarshal(data, &doc); err != nil {
				return errors.InvalidInputError(fmt.Sprintf("input is not a rendered document: %v", err))
			}

			report, err := svc.ScoreDocument(&doc)
			if err != nil {
				return err
			}

			if flagJSON {
				return printJSON(report)
			}
			fmt.Print(formatScoreCard(report))
			return nil
		},
	}
	return cmd
}
