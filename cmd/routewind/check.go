package main

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/routewind-dev/routewind/internal/errors"
	"github.com/routewind-dev/routewind/pkg/router"
	"github.com/spf13/cobra"
)

func checkCmd() *cobra.Command {
	var (
		dir     string
		asJSON  bool
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate route declarations without building a table",
		Long: `Resolve the project's route declarations and report every
diagnostic at once. Exits non-zero if any declaration is malformed
or conflicting.

Examples:
  routewind check
  routewind check --compact
  routewind check --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(dir, asJSON, compact)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Project directory (default: walk up from cwd)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit diagnostics as JSON")
	cmd.Flags().BoolVar(&compact, "compact", false, "One line per diagnostic")

	return cmd
}

func runCheck(dir string, asJSON, compact bool) error {
	cfg, err := loadProject(dir)
	if err != nil {
		return err
	}

	routes, err := buildRoutes(cfg)
	if err != nil {
		var be *router.BuildError
		if !stderrors.As(err, &be) {
			return err
		}
		for _, d := range be.Diagnostics {
			e := diagnosticError(d)
			switch {
			case asJSON:
				fmt.Println(e.FormatJSON())
			case compact:
				fmt.Println(e.FormatCompact())
			default:
				fmt.Print(e.Format())
			}
		}
		errorMsg("%d problems found", len(be.Diagnostics))
		return fmt.Errorf("route build failed")
	}

	success("%d routes, no problems found", len(routes))
	return nil
}

// printBuildError renders build diagnostics one per line, falling back
// to a plain error print for anything else.
func printBuildError(err error) {
	var be *router.BuildError
	if stderrors.As(err, &be) {
		for _, d := range be.Diagnostics {
			fmt.Println(diagnosticError(d).FormatCompact())
		}
		return
	}
	errors.PrintError(err)
}

// diagnosticError converts a build diagnostic into a structured CLI error.
func diagnosticError(d router.Diagnostic) *errors.Error {
	e := errors.New(errors.CodeForKind(string(d.Kind))).WithDetail(d.Message)
	switch len(d.Files) {
	case 0:
	case 1:
		e = e.WithFile(d.Files[0])
	default:
		e = e.WithFile(d.Files[0]).
			WithSuggestion("Conflicting declarations: " + strings.Join(d.Files, ", "))
	}
	return e
}
