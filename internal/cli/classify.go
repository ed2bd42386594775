package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dpshade/draftsmith/internal/errors"
	"github.com/dpshade/draftsmith/internal/models"
)

func newClassifyCmd() *cobra.Command {
	var categoryFlag string

	cmd := &cobra.Command{
		Use:   "classify <request text>",
		Short: "Rank catalog templates against a free-text request",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			hint, err := parseCategoryFlag(categoryFlag)
			if err != nil {
				return err
			}

			result, err := svc.Classify(strings.Join(args, " "), hint)
			if err != nil {
				return err
			}

			if flagJSON {
				return printJSON(result)
			}

			if len(result.Candidates) == 0 {
				fmt.Println("no template matched")
				if len(result.Suggestions) > 0 {
					fmt.Println("did you mean: " + strings.Join(result.Suggestions, ", "))
				}
				return nil
			}
			fmt.Print(formatCandidates(result.Candidates))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "explicit category hint")
	return cmd
}

// parseCategoryFlag converts the --category flag to a typed Category. Empty
// means no hint; anything outside the closed set is rejected with the list
// of valid values.
func parseCategoryFlag(raw string) (models.Category, error) {
	if raw == "" {
		return "", nil
	}
	cat, ok := models.ParseCategory(raw)
	if !ok {
		valid := make([]string, 0, len(models.ValidCategories))
		for name := range models.ValidCategories {
			valid = append(valid, name)
		}
		return "", errors.InvalidInputError(fmt.Sprintf("unknown category %q", raw)).
			WithContext("valid_categories", valid)
	}
	return cat, nil
}
