package cli

import (
	"fmt"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/dpshade/draftsmith/internal/models"
)

func newTemplatesCmd() *cobra.Command {
	var categoryFlag string
	var searchFlag string

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List catalog templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			hint, err := parseCategoryFlag(categoryFlag)
			if err != nil {
				return err
			}

			descriptors := svc.Templates(hint)
			if searchFlag != "" {
				descriptors = fuzzyFilter(descriptors, searchFlag)
			}

			if flagJSON {
				return printJSON(descriptors)
			}
			fmt.Print(formatTemplateList(descriptors))
			return nil
		},
	}

	cmd.Flags().StringVarP(&categoryFlag, "category", "c", "", "filter by category")
	cmd.Flags().StringVarP(&searchFlag, "search", "s", "", "fuzzy filter by id and name")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <template-id>",
		Short: "Show one template's sections and keywords",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			desc, err := svc.Template(args[0])
			if err != nil {
				return err
			}
			if flagJSON {
				return printJSON(desc)
			}
			fmt.Print(formatTemplateDetail(desc))
			return nil
		},
	})
	return cmd
}

func fuzzyFilter(descriptors []*models.TemplateDescriptor, query string) []*models.TemplateDescriptor {
	haystack := make([]string, len(descriptors))
	for i, d := range descriptors {
		haystack[i] = d.ID + " " + d.Name
	}
	matches := fuzzy.Find(query, haystack)

	out := make([]*models.TemplateDescriptor, 0, len(matches))
	for _, m := range matches {
		out = append(out, descriptors[m.Index])
	}
	return out
}
