// Package cli implements the amida command-line interface.
//
// This package provides commands for drawing ladder lotteries, playing
// them interactively, and serving them over HTTP. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - draw: Generate a ladder and render it as SVG, PNG, PDF, JSON, or DOT
//   - play: Run a lottery and print (or interactively reveal) the results
//   - serve: Start the HTTP API for multi-user games
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/yosukei/amida/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

// appName is the application name used for directories and display.
const appName = "amida"
