package report

import (
	"context"

	"github.com/ABShowcase/architectural-showcase-portal/internal/application/dto"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
)

// Artifact is a rendered export: the bytes plus the metadata the HTTP layer
// needs to serve a download.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// OwnedSubmission pairs a submission with the account that registered it.
// Owner is nil when the account no longer exists.
type OwnedSubmission struct {
	Submission *entity.Submission
	Owner      *entity.User
}

// SubmissionsExporter renders the full submission list as a binary artifact.
// The core supplies the data; the exporter owns the byte format and the
// date-stamped filename.
type SubmissionsExporter interface {
	Submissions(ctx context.Context, subs []OwnedSubmission) (*Artifact, error)
}

// ReportExporter renders the cumulative report as a binary artifact.
type ReportExporter interface {
	CumulativeReport(ctx context.Context, rep *dto.CumulativeReportDTO) (*Artifact, error)
}
