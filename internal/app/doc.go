// Package app provides the application context for spaces.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    FS        system.FileSystem      // Config, scan and purge
//	    Executor  system.CommandExecutor // Runs git
//	    Backend   vcs.Backend            // Forced VCS backend, or nil
//	    Clipboard clone.Clipboard        // Destination copy
//	}
//
// # Creating an App
//
// Use New with functional options:
//
//	// Production usage
//	a := app.New()
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithFS(system.NewMockFS()),
//	    app.WithExecutor(system.NewMockExecutor()),
//	    app.WithClipboard(nil),
//	)
//
// # Available Options
//
//	WithFS(fs)              // Custom filesystem
//	WithExecutor(executor)  // Custom command executor
//	WithBackend(backend)    // Force a VCS backend
//	WithClipboard(c)        // Custom clipboard, nil disables copying
package app
