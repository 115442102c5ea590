package content

import (
	"context"
	"errors"
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"

	"github.com/inkmatch/inkdeck/internal/logger"
	inkerrors "github.com/inkmatch/inkdeck/pkg/errors"
)

// Syncer keeps a local checkout of the marketing content repository (the
// showcase YAML plus image assets) up to date.
type Syncer struct {
	log *logger.Logger
}

// NewSyncer creates a Syncer. The logger may be nil.
func NewSyncer(log *logger.Logger) *Syncer {
	return &Syncer{log: log}
}

// Sync clones repoURL into dir, or pulls if a checkout already exists, and
// returns the resolved HEAD hash. Already-up-to-date is not an error.
func (s *Syncer) Sync(ctx context.Context, repoURL, dir string) (string, error) {
	if repoURL == "" {
		return "", inkerrors.NewSyncError(repoURL, fmt.Errorf("repository URL is required"))
	}

	repo, err := git.PlainOpen(dir)
	switch {
	case errors.Is(err, git.ErrRepositoryNotExists):
		s.logInfo("cloning content repository", map[string]any{"repo": repoURL, "dir": dir})
		repo, err = git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
			URL:   repoURL,
			Depth: 1,
		})
		if err != nil {
			return "", inkerrors.NewSyncError(repoURL, fmt.Errorf("clone failed: %w", err))
		}

	case err != nil:
		return "", inkerrors.NewSyncError(repoURL, fmt.Errorf("cannot open checkout: %w", err))

	default:
		wt, wtErr := repo.Worktree()
		if wtErr != nil {
			return "", inkerrors.NewSyncError(repoURL, fmt.Errorf("cannot access worktree: %w", wtErr))
		}

		s.logInfo("pulling content repository", map[string]any{"repo": repoURL, "dir": dir})
		pullErr := wt.PullContext(ctx, &git.PullOptions{RemoteName: "origin"})
		switch {
		case errors.Is(pullErr, git.NoErrAlreadyUpToDate):
			s.logDebug("content already up to date", map[string]any{"dir": dir})
		case pullErr != nil:
			return "", inkerrors.NewSyncError(repoURL, fmt.Errorf("pull failed: %w", pullErr))
		}
	}

	head, err := repo.Head()
	if err != nil {
		return "", inkerrors.NewSyncError(repoURL, fmt.Errorf("cannot resolve HEAD: %w", err))
	}

	return head.Hash().String(), nil
}

// HasCheckout reports whether dir already contains a git checkout.
func HasCheckout(dir string) bool {
	if _, err := os.Stat(dir); err != nil {
		return false
	}
	_, err := git.PlainOpen(dir)
	return err == nil
}

func (s *Syncer) logInfo(msg string, fields map[string]any) {
	if s.log == nil {
		return
	}
	s.log.WithFields(fields).Info(msg)
}

func (s *Syncer) logDebug(msg string, fields map[string]any) {
	if s.log == nil {
		return
	}
	s.log.WithFields(fields).Debug(msg)
}
