// Package report is the administrative reporting façade: submission counts,
// the cumulative aggregation over completed submissions, and export
// delegation.
package report

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/ABShowcase/architectural-showcase-portal/internal/application/dto"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
	domainreport "github.com/ABShowcase/architectural-showcase-portal/internal/domain/report"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/repository"
)

// UseCase serves the admin reporting reads. Every report is a fresh scan of
// the store (correctness over staleness); the last successful report is kept
// as a warm copy for observability.
type UseCase struct {
	subRepo      repository.SubmissionRepository
	userRepo     repository.UserRepository
	subsExporter SubmissionsExporter
	repExporter  ReportExporter
	topN         int
	log          zerolog.Logger

	mu         sync.RWMutex
	lastReport *dto.CumulativeReportDTO
}

// NewUseCase builds the reporting use case. topN bounds the supplier ranking
// returned to callers; the full ranking is still computed.
func NewUseCase(
	subRepo repository.SubmissionRepository,
	userRepo repository.UserRepository,
	subsExporter SubmissionsExporter,
	repExporter ReportExporter,
	topN int,
	log zerolog.Logger,
) *UseCase {
	return &UseCase{
		subRepo:      subRepo,
		userRepo:     userRepo,
		subsExporter: subsExporter,
		repExporter:  repExporter,
		topN:         topN,
		log:          log,
	}
}

// GetStats counts submissions per status over one scan of all submissions,
// plus the registered-user count.
func (uc *UseCase) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	subs, err := uc.subRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{Total: len(subs), Users: users}
	for _, sub := range subs {
		switch sub.Status {
		case entity.StatusCompleted:
			stats.Completed++
		case entity.StatusInProgress:
			stats.InProgress++
		}
	}
	return stats, nil
}

// ListAll returns every submission for the admin listing and the raw export,
// each joined with the account that registered it. A submission whose account
// is gone still lists, with a nil Owner.
func (uc *UseCase) ListAll(ctx context.Context) ([]OwnedSubmission, error) {
	subs, err := uc.subRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*entity.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	owned := make([]OwnedSubmission, 0, len(subs))
	for _, sub := range subs {
		owned = append(owned, OwnedSubmission{Submission: sub, Owner: byID[sub.OwnerID]})
	}
	return owned, nil
}

// GetCumulativeReport aggregates the completed submissions as read at this
// instant. Zero completed submissions produce an explicit no-data report
// (total 0, empty sub-results), not an error.
func (uc *UseCase) GetCumulativeReport(ctx context.Context) (*dto.CumulativeReportDTO, error) {
	subs, err := uc.subRepo.ListCompleted(ctx)
	if err != nil {
		return nil, err
	}
	rep := domainreport.Aggregate(subs)
	out := uc.toDTO(rep)

	uc.mu.Lock()
	uc.lastReport = out
	uc.mu.Unlock()
	return out, nil
}

// LastReport returns the most recent successfully computed report, or nil
// when none has been computed yet.
func (uc *UseCase) LastReport() *dto.CumulativeReportDTO {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.lastReport
}

// SubmissionsArtifact renders the all-submissions export with the entrant
// account joined into each row.
func (uc *UseCase) SubmissionsArtifact(ctx context.Context) (*Artifact, error) {
	owned, err := uc.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return uc.subsExporter.Submissions(ctx, owned)
}

// CumulativeArtifact renders the cumulative-report export from a fresh scan.
func (uc *UseCase) CumulativeArtifact(ctx context.Context) (*Artifact, error) {
	rep, err := uc.GetCumulativeReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.repExporter.CumulativeReport(ctx, rep)
}

func (uc *UseCase) toDTO(rep domainreport.Report) *dto.CumulativeReportDTO {
	out := &dto.CumulativeReportDTO{
		Total: rep.Total,
		CostAnalysis: dto.CostAnalysisDTO{
			ProjectsWithCost: rep.CostAnalysis.ProjectsWithCost,
			TotalSpent:       rep.CostAnalysis.TotalSpent,
			AverageCost:      rep.CostAnalysis.AverageCost,
		},
		ByCategory:   make([]dto.NameCountDTO, 0, len(rep.ByCategory)),
		ByType:       make([]dto.NameCountDTO, 0, len(rep.ByType)),
		TopSuppliers: make([]dto.NameCountDTO, 0, uc.topN),
	}
	for _, b := range rep.ByCategory {
		out.ByCategory = append(out.ByCategory, dto.NameCountDTO{Name: b.Name, Count: b.Count})
	}
	for _, b := range rep.ByType {
		out.ByType = append(out.ByType, dto.NameCountDTO{Name: b.Name, Count: b.Count})
	}
	for i, s := range rep.TopSuppliers {
		if uc.topN > 0 && i >= uc.topN {
			break
		}
		out.TopSuppliers = append(out.TopSuppliers, dto.NameCountDTO{Name: s.Name, Count: s.Count})
	}
	return out
}
