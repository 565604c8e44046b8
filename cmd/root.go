package cmd

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/spaces/internal/errors"
	"github.com/firefly-engineering/spaces/internal/logging"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbose    bool
	jsonOutput bool
	configPath string
}

func newRootCmd(flags *globalFlags, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "spaces",
		Short: "Manage parallel checkouts of your repositories",
		Long: `spaces keeps one checkout per repository branch under a single
directory, laid out as <spaces_dir>/<owner>/<repo>-<branch>.

Repositories and credentials are read from ~/.spaces.yml, or the file
named by --config or $SPACES_CONFIG.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(flags.verbose, flags.jsonOutput, stderr)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&flags.jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Config file (default $SPACES_CONFIG or ~/.spaces.yml)")
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newNewCmd(flags),
		newPurgeCmd(flags),
		newListCmd(flags),
	)

	return rootCmd
}

// Run executes the command line in args, where args[0] is the program
// name, and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logging.SetOutput(stdout, stderr)
	defer logging.SetOutput(nil, nil)

	rootCmd := newRootCmd(&globalFlags{}, stderr)
	rootCmd.SetArgs(args[1:])
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logError("%s", err)
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}
