package artifact

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/checkmend/checkmend/internal/domain"
)

// Store implements domain.ArtifactStore over the local filesystem,
// rooted at one project directory.
type Store struct {
	root string
}

// NewStore creates a store rooted at root. The root is not required to
// exist; a missing root simply means every artifact is absent.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the absolute project root this store serves.
func (s *Store) Root() string { return s.root }

// Provider implements domain.StoreProvider for filesystem stores.
type Provider struct{}

func NewProvider() *Provider { return &Provider{} }

func (p *Provider) Open(projectPath string) (domain.ArtifactStore, error) {
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}
	return NewStore(abs), nil
}

func (s *Store) path(rel string) string {
	return filepath.Join(s.root, filepath.FromSlash(rel))
}

func (s *Store) Exists(rel string) (bool, error) {
	_, err := os.Stat(s.path(rel))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (s *Store) IsDir(rel string) (bool, error) {
	info, err := os.Stat(s.path(rel))
	if err == nil {
		return info.IsDir(), nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (s *Store) ReadFile(rel string) ([]byte, error) {
	return os.ReadFile(s.path(rel))
}

func (s *Store) WriteFile(rel string, data []byte) error {
	p := s.path(rel)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0644)
}

func (s *Store) MkdirAll(rel string) error {
	return os.MkdirAll(s.path(rel), 0755)
}
