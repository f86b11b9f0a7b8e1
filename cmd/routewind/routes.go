package main

import (
	"fmt"

	"github.com/routewind-dev/routewind/pkg/router"
	"github.com/spf13/cobra"
)

func routesCmd() *cobra.Command {
	var (
		dir     string
		sources bool
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List the resolved route table",
		Long: `Resolve the project's route declarations and print the table in
precedence order.

Examples:
  routewind routes
  routewind routes --dir=./service
  routewind routes --sources`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutes(dir, sources)
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Project directory (default: walk up from cwd)")
	cmd.Flags().BoolVar(&sources, "sources", false, "Show the declaration file for each route")

	return cmd
}

func runRoutes(dir string, sources bool) error {
	cfg, err := loadProject(dir)
	if err != nil {
		return err
	}

	routes, err := buildRoutes(cfg)
	if err != nil {
		printBuildError(err)
		return fmt.Errorf("route build failed")
	}

	summaries := router.Summarize(routes)
	if sources {
		for _, s := range summaries {
			fmt.Printf("  %-7s %-40s mw=%-3d %s\n", s.Method, s.Pattern, s.ChainLen, s.Source)
		}
	} else {
		fmt.Print(router.FormatSummaries(summaries))
	}
	fmt.Println()
	success("%d routes", len(routes))
	return nil
}
