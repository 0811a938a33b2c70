package application

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/checkmend/checkmend/internal/domain"
	"github.com/checkmend/checkmend/internal/domain/evaluate"
	"github.com/checkmend/checkmend/internal/domain/mend"
)

// AuditService orchestrates the audit pipeline:
// load config → evaluate checklist → apply repairs → score health → assemble report.
type AuditService struct {
	stores  domain.StoreProvider
	configs domain.ConfigLoader
	git     domain.GitInfo
}

func NewAuditService(stores domain.StoreProvider, configs domain.ConfigLoader, git domain.GitInfo) *AuditService {
	return &AuditService{stores: stores, configs: configs, git: git}
}

// Audit runs the full validate-and-repair pipeline against projectPath.
// Issues found before a repair are kept in the report; the repaired gap
// clears on the next run. A returned error means no report was produced.
func (s *AuditService) Audit(projectPath string) (*domain.Report, error) {
	cfg, store, err := s.setup(projectPath)
	if err != nil {
		return nil, err
	}

	rc := domain.NewRunContext()

	// 1. Evaluate the checklist (read-only)
	if err := evaluate.Run(cfg.EffectiveChecklist(), store, rc); err != nil {
		return nil, fmt.Errorf("evaluating checklist: %w", err)
	}

	// 2. Apply the repair catalog (only mutating stage, never fails the run)
	mend.Apply(cfg.EffectiveCatalog(), store, rc)

	// 3. Score and assemble
	return s.assemble(projectPath, rc), nil
}

// Inspect evaluates the checklist without touching the repair catalog.
// The artifact tree is guaranteed unchanged.
func (s *AuditService) Inspect(projectPath string) (*domain.Report, error) {
	cfg, store, err := s.setup(projectPath)
	if err != nil {
		return nil, err
	}

	rc := domain.NewRunContext()
	if err := evaluate.Run(cfg.EffectiveChecklist(), store, rc); err != nil {
		return nil, fmt.Errorf("evaluating checklist: %w", err)
	}

	return s.assemble(projectPath, rc), nil
}

// Repair applies the repair catalog without evaluating the checklist.
// The resulting report carries no validation records, so its health tier
// is UNKNOWN by construction.
func (s *AuditService) Repair(projectPath string) (*domain.Report, error) {
	cfg, store, err := s.setup(projectPath)
	if err != nil {
		return nil, err
	}

	rc := domain.NewRunContext()
	mend.Apply(cfg.EffectiveCatalog(), store, rc)

	return s.assemble(projectPath, rc), nil
}

func (s *AuditService) setup(projectPath string) (domain.AuditConfig, domain.ArtifactStore, error) {
	cfg, err := s.configs.Load(projectPath)
	if err != nil {
		return domain.AuditConfig{}, nil, fmt.Errorf("loading config: %w", err)
	}

	store, err := s.stores.Open(projectPath)
	if err != nil {
		return domain.AuditConfig{}, nil, fmt.Errorf("opening project: %w", err)
	}

	return cfg, store, nil
}

// assemble produces the final immutable report from a completed run.
// Pure shape transformation; the health tier is the only computed value.
func (s *AuditService) assemble(projectPath string, rc *domain.RunContext) *domain.Report {
	records := rc.Validations()
	tier, passed, total := domain.ComputeHealth(records)

	report := &domain.Report{
		RunID:             uuid.NewString(),
		ProjectPath:       projectPath,
		ValidationResults: records,
		RepairsApplied:    rc.Repairs(),
		IssuesFound:       rc.Issues(),
		RepairFailures:    rc.Failures(),
		OverallHealth:     tier,
		Passed:            passed,
		Total:             total,
		Timestamp:         time.Now(),
	}

	if s.git != nil {
		if hash, err := s.git.CommitHash(projectPath); err == nil {
			report.CommitHash = hash
		}
	}

	return report
}
