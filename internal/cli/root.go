// Package cli is the headless hosting layer over the pipeline. It sources
// request text and field values from arguments and files, and presents the
// returned document and score report; the pipeline itself stays free of any
// terminal concerns.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dpshade/draftsmith/internal/errors"
	"github.com/dpshade/draftsmith/internal/logger"
	"github.com/dpshade/draftsmith/internal/service"
)

var version = "0.1.0"

var (
	flagJSON     bool
	flagPlain    bool
	flagNoColor  bool
	flagVerbose  bool
	flagLogLevel string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "draftsmith",
		Short: "Classify requests, fill document templates, score completeness",
		Long:  `draftsmith maps a free-text request to a canonical document template,
fills the template with supplied field values, and checks the result
against a weighted completeness rubric.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVar(&flagJSON, "json", false, "machine-readable JSON output")
	root.PersistentFlags().BoolVar(&flagPlain, "plain", false, "skip markdown preview rendering")
	root.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable styled output")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose error output")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "error", "log level (debug|info|warn|error)")

	root.AddCommand(
		newClassifyCmd(),
		newTemplatesCmd(),
		newRenderCmd(),
		newProcessCmd(),
		newScoreCmd(),
	)
	return root
}

// newService builds the pipeline over the builtin catalog. Catalog load
// failures abort the command; nothing is served from a partial catalog.
func newService() (*service.Service, error) {
	format := "console"
	if flagJSON {
		format = "json"
	}
	return service.New(service.WithLogger(logger.New(flagLogLevel, format)))
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := newRootCmd().Execute(); err != nil {
		handler := errors.NewCLIErrorHandler(flagVerbose, flagNoColor)
		fmt.Fprintln(os.Stderr, handler.FormatError(err))
		return 1
	}
	return 0
}
