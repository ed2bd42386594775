package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dpshade/draftsmith/internal/renderer"
)

func newProcessCmd() *cobra.Command {
	var categoryFlag string
	var fieldFlags []string
	var fieldsFile string

	cmd := &cobra.Command{
		Use:   "process <request text>",
		Short: "Run the full pipeline: classify, render, score",
		Long:  `process classifies the request, fills the matching template with the
supplied field values, and scores the result. Unclassified or ambiguous
requests fail with the data needed to retry: suggestions or the ranked
candidate list.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			hint, err := parseCategoryFlag(categoryFlag)
			if err != nil {
				return err
			}

			values, err := collectFieldValues(fieldsFile, fieldFlags)
			if err != nil {
				return err
			}

			result, err := svc.Process(strings.Join(args, " "), hint, values)
			if err != nil {
				return err
			}

			if flagJSON {
				return printJSON(result)
			}

			fmt.Print(renderPreview(renderer.Markdown(result.Document)))
			fmt.Println()
			fmt.Print(formatScoreCard(result.Score))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "explicit category hint")
	cmd.Flags().StringArrayVarP(&fieldFlags, "field", "f", nil, "field value as key=value (repeatable)")
	cmd.Flags().StringVar(&fieldsFile, "fields-file", "", "YAML file of field values")
	return cmd
}
