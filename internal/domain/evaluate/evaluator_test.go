package evaluate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkmend/checkmend/internal/domain"
	"github.com/checkmend/checkmend/internal/domain/evaluate"
)

// memStore is an in-memory domain.ArtifactStore for evaluator tests.
type memStore struct {
	files   map[string]string
	dirs    map[string]bool
	statErr error
	readErr error
}

func newMemStore() *memStore {
	return &memStore{files: map[string]string{}, dirs: map[string]bool{}}
}

func (m *memStore) Exists(rel string) (bool, error) {
	if m.statErr != nil {
		return false, m.statErr
	}
	if _, ok := m.files[rel]; ok {
		return true, nil
	}
	return m.dirs[rel], nil
}

func (m *memStore) IsDir(rel string) (bool, error) {
	if m.statErr != nil {
		return false, m.statErr
	}
	return m.dirs[rel], nil
}

func (m *memStore) ReadFile(rel string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	content, ok := m.files[rel]
	if !ok {
		return nil, errors.New("file does not exist")
	}
	return []byte(content), nil
}

func (m *memStore) WriteFile(rel string, data []byte) error {
	m.files[rel] = string(data)
	return nil
}

func (m *memStore) MkdirAll(rel string) error {
	m.dirs[rel] = true
	return nil
}

func TestRun_MissingRequiredFile(t *testing.T) {
	store := newMemStore()
	rules := domain.Checklist{
		{Component: "manifest", Kind: domain.RuleFileExists, Path: "f1", Foundational: true},
	}

	rc := domain.NewRunContext()
	require.NoError(t, evaluate.Run(rules, store, rc))

	assert.Empty(t, rc.Validations())
	require.Len(t, rc.Issues(), 1)
	assert.Equal(t, domain.SeverityCritical, rc.Issues()[0].Severity)
	assert.Contains(t, rc.Issues()[0].Description, "f1")

	tier, _, _ := domain.ComputeHealth(rc.Validations())
	assert.Equal(t, domain.TierUnknown, tier)
}

func TestRun_PresentRequiredFile(t *testing.T) {
	store := newMemStore()
	store.files["f1"] = "content"
	rules := domain.Checklist{
		{Component: "manifest", Kind: domain.RuleFileExists, Path: "f1"},
	}

	rc := domain.NewRunContext()
	require.NoError(t, evaluate.Run(rules, store, rc))

	require.Len(t, rc.Validations(), 1)
	assert.Equal(t, domain.StatusPassed, rc.Validations()["manifest"].Status)
	assert.Empty(t, rc.Issues())

	tier, _, _ := domain.ComputeHealth(rc.Validations())
	assert.Equal(t, domain.TierExcellent, tier)
}

func TestRun_ContentCheckShortCircuitsOnMissingArtifact(t *testing.T) {
	store := newMemStore()
	rules := domain.Checklist{
		{Component: "manifest_declarations", Kind: domain.RuleFileContains, Path: "f1",
			Keywords: []string{"module ", "go "}},
	}

	rc := domain.NewRunContext()
	require.NoError(t, evaluate.Run(rules, store, rc))

	// Exactly one issue for the missing artifact; the keyword sub-checks
	// never ran.
	require.Len(t, rc.Issues(), 1)
	assert.Equal(t, domain.SeverityCritical, rc.Issues()[0].Severity)
	assert.Contains(t, rc.Issues()[0].Description, "missing")
	assert.NotContains(t, rc.Issues()[0].Description, "module ")
	assert.Empty(t, rc.Validations())
}

func TestRun_ContentCheckAccumulatesMissingKeywords(t *testing.T) {
	store := newMemStore()
	store.files["Dockerfile"] = "FROM golang:1.24\n"
	rules := domain.Checklist{
		{Component: "container_image", Kind: domain.RuleFileContains, Path: "Dockerfile",
			Keywords: []string{"FROM ", "USER ", "HEALTHCHECK", "EXPOSE "}},
	}

	rc := domain.NewRunContext()
	require.NoError(t, evaluate.Run(rules, store, rc))

	// One issue listing all three missing keywords, not three issues.
	require.Len(t, rc.Issues(), 1)
	issue := rc.Issues()[0]
	assert.Contains(t, issue.Description, "USER ")
	assert.Contains(t, issue.Description, "HEALTHCHECK")
	assert.Contains(t, issue.Description, "EXPOSE ")
	assert.NotContains(t, issue.Description, "FROM ,")
}

func TestRun_ContentCheckAllKeywordsPresent(t *testing.T) {
	store := newMemStore()
	store.files["go.mod"] = "module example.com/svc\n\ngo 1.24\n"
	rules := domain.Checklist{
		{Component: "manifest_declarations", Kind: domain.RuleFileContains, Path: "go.mod",
			Keywords: []string{"module ", "go "}},
	}

	rc := domain.NewRunContext()
	require.NoError(t, evaluate.Run(rules, store, rc))

	assert.Empty(t, rc.Issues())
	require.Len(t, rc.Validations(), 1)
}

func TestRun_DirExists(t *testing.T) {
	store := newMemStore()
	store.dirs["cmd"] = true
	store.files["internal"] = "oops, a file"

	rules := domain.Checklist{
		{Component: "entrypoints", Kind: domain.RuleDirExists, Path: "cmd"},
		{Component: "internal_packages", Kind: domain.RuleDirExists, Path: "internal"},
		{Component: "docs", Kind: domain.RuleDirExists, Path: "docs"},
	}

	rc := domain.NewRunContext()
	require.NoError(t, evaluate.Run(rules, store, rc))

	require.Len(t, rc.Validations(), 1)
	assert.Contains(t, rc.Validations(), "entrypoints")

	require.Len(t, rc.Issues(), 2)
	assert.Contains(t, rc.Issues()[0].Description, "not a directory")
	assert.Contains(t, rc.Issues()[1].Description, "missing")
}

func TestRun_EveryRuleYieldsRecordXorIssue(t *testing.T) {
	store := newMemStore()
	store.files["go.mod"] = "module example.com/svc\n\ngo 1.24\n"
	store.dirs["cmd"] = true

	rules := domain.DefaultChecklistForType(domain.ProjectTypeService)

	rc := domain.NewRunContext()
	require.NoError(t, evaluate.Run(rules, store, rc))

	// Each rule produced exactly one outcome: a record or at least one issue.
	assert.Equal(t, len(rules), len(rc.Validations())+len(rc.Issues()))
	for component := range rc.Validations() {
		for _, issue := range rc.Issues() {
			assert.NotContains(t, issue.Description, component)
		}
	}
}

func TestRun_UnexpectedIOFailureAbortsRun(t *testing.T) {
	store := newMemStore()
	store.statErr = errors.New("permission denied")
	rules := domain.Checklist{
		{Component: "manifest", Kind: domain.RuleFileExists, Path: "f1"},
	}

	rc := domain.NewRunContext()
	err := evaluate.Run(rules, store, rc)
	require.Error(t, err)
	assert.ErrorContains(t, err, "manifest")
	assert.ErrorContains(t, err, "permission denied")
}

func TestRun_ReadFailureAbortsRun(t *testing.T) {
	store := newMemStore()
	store.files["go.mod"] = "module x"
	store.readErr = errors.New("input/output error")
	rules := domain.Checklist{
		{Component: "manifest_declarations", Kind: domain.RuleFileContains, Path: "go.mod",
			Keywords: []string{"module "}},
	}

	rc := domain.NewRunContext()
	assert.ErrorContains(t, evaluate.Run(rules, store, rc), "input/output error")
}

func TestRun_UnknownRuleKindIsAnError(t *testing.T) {
	rc := domain.NewRunContext()
	err := evaluate.Run(domain.Checklist{{Component: "x", Kind: "mystery", Path: "y"}}, newMemStore(), rc)
	assert.ErrorContains(t, err, "unknown rule kind")
}
