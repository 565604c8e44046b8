package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/spaces/internal/app"
	"github.com/firefly-engineering/spaces/internal/config"
	"github.com/firefly-engineering/spaces/internal/errors"
	"github.com/firefly-engineering/spaces/internal/logging"
	"github.com/firefly-engineering/spaces/internal/selection"
	"github.com/firefly-engineering/spaces/internal/space"
	"github.com/firefly-engineering/spaces/internal/tui"
)

// runSelection drives the interactive wizard. Tests replace it.
var runSelection func(repos []config.Repo, index space.Index) (selection.Result, bool, error) = tui.RunNewSpace

type newFlags struct {
	repo       string
	branch     string
	baseBranch string
}

func newNewCmd(flags *globalFlags) *cobra.Command {
	var nf newFlags

	newCmd := &cobra.Command{
		Use:   "new",
		Short: "Create a space",
		Long: `Create a space by picking a repository, then a branch, then an
optional base branch to fork a new branch from.

Picking an existing space finishes at once. A branch that does not exist
upstream is created from the default branch, or from --base.

With --repo the wizard is skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, flags, &nf)
		},
	}

	newCmd.Flags().StringVarP(&nf.repo, "repo", "r", "", "Cataloged repository to clone, skipping the wizard")
	newCmd.Flags().StringVarP(&nf.branch, "branch", "b", "", "Branch of the space (default: the repository default branch)")
	newCmd.Flags().StringVar(&nf.baseBranch, "base", "", "Branch to fork a new branch from")

	return newCmd
}

func runNew(cmd *cobra.Command, flags *globalFlags, nf *newFlags) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	res, ok, err := selectSpace(cfg, nf)
	if err != nil {
		return err
	}
	if !ok {
		logging.Debug("space selection cancelled")
		return nil
	}

	logInfo("Creating space for %s", res.Repo.Name)

	msg, err := app.Default.Orchestrator(cfg).Execute(cmd.Context(), cfg, res.Repo, res.Branch, res.BaseBranch)
	if err != nil {
		return err
	}

	logSuccess("%s", msg)
	return nil
}

// selectSpace resolves the selection from flags, or runs the wizard.
func selectSpace(cfg *config.Config, nf *newFlags) (selection.Result, bool, error) {
	if nf.repo != "" {
		repo, ok := cfg.FindRepo(nf.repo)
		if !ok {
			return selection.Result{}, false, errors.ValidationError(fmt.Sprintf("repository %s is not configured in %s", nf.repo, cfg.Path))
		}
		base := nf.baseBranch
		if base != "" && nf.branch == "" {
			// The default branch already exists upstream; there is nothing to fork.
			logWarning("Ignoring --base %s without --branch", base)
			base = ""
		}
		return selection.Result{Repo: repo, Branch: nf.branch, BaseBranch: base}, true, nil
	}

	if len(cfg.Repos) == 0 {
		return selection.Result{}, false, errors.ConfigError(fmt.Sprintf("no repositories configured in %s", cfg.Path), nil)
	}

	res, ok, err := runSelection(cfg.Repos, cfg.Spaces)
	if err != nil {
		return selection.Result{}, false, errors.IOFailure("failed to run the terminal interface", err)
	}
	return res, ok, nil
}
