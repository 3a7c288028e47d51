package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/boolean-maybe/mycounter/config"
	"github.com/boolean-maybe/mycounter/internal/app"
	"github.com/boolean-maybe/mycounter/internal/bootstrap"
	"github.com/boolean-maybe/mycounter/util/sysinfo"
)

// main runs the application bootstrap and starts the TUI.
func main() {
	// Handle version flag
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("mycounter version %s\ncommit: %s\nbuilt: %s\n",
			config.Version, config.GitCommit, config.BuildDate)
		if config.InitPaths() == nil {
			fmt.Print(sysinfo.NewSystemInfo().String())
		}
		os.Exit(0)
	}

	// Initialize paths early - this must succeed for the application to function
	if err := config.InitPaths(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	// Bootstrap application
	result, err := bootstrap.Bootstrap()
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	// Run application
	runErr := app.Run(result.App, result.UI.RootLayout, config.GetMouseEnabled())

	// Save the session and close the log whether or not the run failed
	result.Shutdown()

	if runErr != nil {
		slog.Error("application error", "error", runErr)
		_, _ = fmt.Fprintln(os.Stderr, "error:", runErr)
		os.Exit(1)
	}
}
