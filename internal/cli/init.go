package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vvka-141/umbrella/internal/scaffold"
)

var initCmd = &cobra.Command{
	Use:   "init <target_path>",
	Short: "Initialize a new umbrella project",
	Long: `Initialize an umbrella project into the specified directory.

The init command creates:
- A template header with the placeholder tokens
- A starter static include list and matching include tree
- umbrella.yaml with project defaults
- README with usage instructions

Target directory must be empty or non-existent.

Examples:
  umbrella init .                # Initialize in current directory
  umbrella init ./mylib          # Initialize in ./mylib`,
	Args: cobra.MinimumNArgs(0),
	RunE: runInit,
}

var (
	initTemplate string
	initList     bool
)

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "basic", "Project template to use")
	initCmd.Flags().BoolVar(&initList, "list", false, "List available project templates")
}

func runInit(cmd *cobra.Command, args []string) error {
	if initList {
		templates, err := scaffold.ListTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}
		fmt.Fprintln(os.Stderr, "Available templates:")
		for _, t := range templates {
			fmt.Fprintf(os.Stderr, "  %s\n", t)
		}
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("target path required\n\nUsage: umbrella init <target_path> [flags]\n\nUse 'umbrella init --list' to see available templates")
	}

	targetPath := args[0]

	projectName := filepath.Base(targetPath)
	if projectName == "." || projectName == ".." {
		cwd, err := os.Getwd()
		if err == nil {
			projectName = filepath.Base(cwd)
		} else {
			projectName = "project"
		}
	}
	verbose := getVerboseFlag(cmd)

	if !scaffold.IsValidTemplate(initTemplate) {
		templates, _ := scaffold.ListTemplates()
		return fmt.Errorf("invalid template '%s'. Available templates: %v", initTemplate, templates)
	}

	scaffolder := scaffold.NewScaffolder(verbose)
	if err := scaffolder.CreateProject(projectName, initTemplate, targetPath); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	tree, err := scaffold.BuildFileTree(targetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "\n✓ Project initialized successfully in '%s'\n\n", targetPath)
	} else {
		fmt.Fprintf(os.Stderr, "\n✓ Project initialized successfully using template '%s'\n\n", initTemplate)
		fmt.Fprintln(os.Stderr, "Created structure:")
		fmt.Fprint(os.Stderr, tree)
	}

	fmt.Fprintln(os.Stderr, "\nNext steps:")
	if targetPath != "." {
		fmt.Fprintf(os.Stderr, "  cd %s\n", targetPath)
	}
	fmt.Fprintln(os.Stderr, "  umbrella generate --includes-dir include --static-includes static_includes.txt")

	return nil
}
