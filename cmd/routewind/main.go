package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦═╗┌─┐┬ ┬┌┬┐┌─┐╦ ╦┬┌┐┌┌┬┐
  ╠╦╝│ ││ │ │ ├┤ ║║║││││ ││
  ╩╚═└─┘└─┘ ┴ └─┘╚╩╝┴┘└┘─┴┘
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "routewind",
		Short: "File-convention route tables for Go HTTP services",
		Long: `Routewind resolves file-convention route declarations into a
deterministic HTTP dispatch table.

Declarations follow the <name>.<method>.go convention:

  routes/
    index.get.go            GET /
    users.get.go            GET /users
    users/[id].get.go       GET /users/:id
    docs/[...slug].get.go   GET /docs/*slug
    api/_middleware.go      middleware for /api and below

Conflicting or malformed declarations fail the build with every
diagnostic reported at once.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add commands
	rootCmd.AddCommand(
		routesCmd(),
		checkCmd(),
		versionCmd(),
	)

	// Execute
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

// printBanner prints the Routewind ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}

// errorMsg prints an error message.
func errorMsg(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "\033[31m✗\033[0m %s\n", fmt.Sprintf(format, args...))
}
