package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/checkmend/checkmend/internal/domain"
)

const fileName = ".checkmend.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .checkmend.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .checkmend.yaml from projectPath.
// Returns the service defaults if the file does not exist.
func (l *YAMLLoader) Load(projectPath string) (domain.AuditConfig, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.AuditConfig{}, err
	}

	var cfg domain.AuditConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.AuditConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	// Catches typos before the checklist reaches the evaluator.
	if err := cfg.Validate(); err != nil {
		return domain.AuditConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}

	return cfg, nil
}

// Generate renders a commented .checkmend.yaml for the given project type,
// preloaded with the built-in checklist and repair catalog.
func Generate(pt domain.ProjectType) (string, error) {
	cfg := domain.DefaultConfigForType(pt)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("rendering config: %w", err)
	}

	header := "# checkmend configuration\n" +
		"# Checklist rules and the repair catalog audited for this project.\n" +
		"# Remove entries you do not care about; order is evaluation order.\n\n"
	return header + string(data), nil
}
