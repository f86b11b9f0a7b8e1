// Package errors provides structured, actionable error messages for the
// routewind CLI.
//
// The errors package implements an error system that:
//   - Shows the offending declaration or config location
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues with examples
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - parse: declaration-name errors (unknown method, invalid name)
//   - build: route-tree errors (duplicates, conflicts, ambiguity)
//   - config: routewind.json errors
//   - cli: command usage errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "E001") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E103").
//	    WithDetail("docs/[...slug].get.go conflicts with docs/[id].get.go").
//	    WithSuggestion("Move one of the routes to a different scope")
//
//	fmt.Println(err.Format())
package errors
