package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/umbrella/internal/config"
	"github.com/vvka-141/umbrella/internal/generator"
	"github.com/vvka-141/umbrella/internal/logging"
	"github.com/vvka-141/umbrella/pkg/umbrella"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the umbrella header",
	Long: `Scan the includes directory, verify it matches the static include list,
and write the populated template to the destination.

Configuration is resolved from flags, then environment variables (a .env file
in the working directory is honored), then an optional umbrella.yaml next to
the static include list.

Required settings:
  --dest             or HEADER_DEST
  --template         or HEADER_TEMPLATE
  --includes-dir     or INCLUDES_DIR
  --static-includes  or UMBRELLA_STATIC_INCLUDES

Examples:
  umbrella generate --includes-dir include --static-includes static_includes.txt \
    --template umbrella.h.in --dest umbrella.h

  HEADER_DEST=umbrella.h HEADER_TEMPLATE=umbrella.h.in \
    INCLUDES_DIR=include UMBRELLA_STATIC_INCLUDES=static_includes.txt \
    umbrella generate`,
	RunE: runGenerate,
}

var generateFlags struct {
	dest           string
	template       string
	includesDir    string
	staticIncludes string
	namespace      string
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateFlags.dest, "dest", "", "Output file path (overwritten)")
	generateCmd.Flags().StringVar(&generateFlags.template, "template", "", "Template file with placeholder tokens")
	generateCmd.Flags().StringVar(&generateFlags.includesDir, "includes-dir", "", "Root directory to scan for header files")
	generateCmd.Flags().StringVar(&generateFlags.staticIncludes, "static-includes", "", "Curated static include list file")
	generateCmd.Flags().StringVar(&generateFlags.namespace, "namespace", "", "Namespace directory segment (default \"openssl\")")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	cfg, err := config.Resolve(config.Config{
		Dest:           generateFlags.dest,
		Template:       generateFlags.template,
		IncludesDir:    generateFlags.includesDir,
		StaticIncludes: generateFlags.staticIncludes,
		Namespace:      generateFlags.namespace,
	}, config.LoadFromEnvironment())
	if err != nil {
		return err
	}

	gen := generator.New(cfg, logger)
	if err := gen.Run(); err != nil {
		var divergence *umbrella.DivergenceError
		if errors.As(err, &divergence) {
			fmt.Fprint(os.Stderr, renderDivergence(divergence.Result))
			return fmt.Errorf("static include list %s is out of date: %w",
				cfg.StaticIncludes, umbrella.ErrDivergence)
		}
		return err
	}

	return nil
}
