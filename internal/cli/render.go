package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dpshade/draftsmith/internal/renderer"
)

func newRenderCmd() *cobra.Command {
	var fieldFlags []string
	var fieldsFile string

	cmd := &cobra.Command{
		Use:   "render <template-id>",
		Short: "Fill a template's placeholders and print the document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			values, err := collectFieldValues(fieldsFile, fieldFlags)
			if err != nil {
				return err
			}

			doc, err := svc.Render(args[0], values)
			if err != nil {
				return err
			}

			if flagJSON {
				out, err := renderer.JSON(doc)
				if err != nil {
					return err
				}
				fmt.Println(out)
				return nil
			}
			fmt.Print(renderPreview(renderer.Markdown(doc)))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&fieldFlags, "field", "f", nil, "field value as key=value (repeatable)")
	cmd.Flags().StringVar(&fieldsFile, "fields-file", "", "YAML file of field values")
	return cmd
}
