package gitinfo

import (
	"fmt"

	"github.com/go-git/go-git/v5"
)

// Adapter implements domain.GitInfo using go-git. All lookups are
// best-effort: the audit works the same on non-repos.
type Adapter struct{}

func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) IsGitRepo(projectPath string) bool {
	_, err := git.PlainOpen(projectPath)
	return err == nil
}

// CommitHash returns the full HEAD hash for the repo at projectPath.
func (a *Adapter) CommitHash(projectPath string) (string, error) {
	repo, err := git.PlainOpen(projectPath)
	if err != nil {
		return "", fmt.Errorf("opening repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("resolving HEAD: %w", err)
	}

	return head.Hash().String(), nil
}
