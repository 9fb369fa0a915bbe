package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ABShowcase/architectural-showcase-portal/internal/domain"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/repository"
)

var _ repository.SubmissionRepository = (*SubmissionRepo)(nil)

// SubmissionRepo implements the SubmissionRepository port over PostgreSQL.
// Architects and the supplier map are stored as JSONB; updated_at is always
// assigned by the database, never taken from the snapshot.
type SubmissionRepo struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository builds the persistence adapter for submissions.
func NewSubmissionRepository(pool *pgxpool.Pool) *SubmissionRepo {
	return &SubmissionRepo{pool: pool}
}

const submissionColumns = `
	id, owner_id, status,
	project_name, project_location, project_address,
	contact_name, contact_title, contact_phone, contact_email, contact_role,
	publish_authorization,
	project_type, project_category, date_of_occupancy,
	total_construction_cost, total_gross_sqft, seating_capacity, cost_per_sqft, primary_funding,
	facility_rep_name, facility_rep_title, facility_rep_phone, facility_rep_email, facility_rep_address,
	project_summary, project_description, special_instructions,
	photo_credits, photo_special_instructions,
	architects, manufacturers_suppliers,
	created_at, updated_at`

// Create inserts a fresh draft. The UNIQUE(owner_id) constraint enforces one
// submission per user; a second insert for the same owner returns
// domain.ErrDuplicate so the caller can re-read the winner.
func (r *SubmissionRepo) Create(ctx context.Context, sub *entity.Submission) error {
	query := `
		INSERT INTO submissions (` + submissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		        $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
		        $31, $32, $33, $34)`
	_, err := r.pool.Exec(ctx, query, writeArgs(sub)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// GetByID fetches a submission by id. Returns (nil, nil) when no row matches.
func (r *SubmissionRepo) GetByID(ctx context.Context, id string) (*entity.Submission, error) {
	return r.get(ctx, `WHERE id = $1`, id)
}

// GetByOwner fetches the owner's submission. Returns (nil, nil) when the
// owner has none yet.
func (r *SubmissionRepo) GetByOwner(ctx context.Context, ownerID string) (*entity.Submission, error) {
	return r.get(ctx, `WHERE owner_id = $1`, ownerID)
}

// Save persists a full snapshot of a non-completed submission and returns the
// database-assigned updated_at. A completed row rejects the write with
// ErrSubmissionLocked; a missing row yields ErrNotFound.
func (r *SubmissionRepo) Save(ctx context.Context, sub *entity.Submission) (time.Time, error) {
	query := `
		UPDATE submissions SET
			status = $2,
			project_name = $3, project_location = $4, project_address = $5,
			contact_name = $6, contact_title = $7, contact_phone = $8, contact_email = $9, contact_role = $10,
			publish_authorization = $11,
			project_type = $12, project_category = $13, date_of_occupancy = $14,
			total_construction_cost = $15, total_gross_sqft = $16, seating_capacity = $17,
			cost_per_sqft = $18, primary_funding = $19,
			facility_rep_name = $20, facility_rep_title = $21, facility_rep_phone = $22,
			facility_rep_email = $23, facility_rep_address = $24,
			project_summary = $25, project_description = $26, special_instructions = $27,
			photo_credits = $28, photo_special_instructions = $29,
			architects = $30, manufacturers_suppliers = $31,
			updated_at = now()
		WHERE id = $1 AND status <> 'completed'
		RETURNING updated_at`

	suppliers := sub.ManufacturersSuppliers
	if suppliers == nil {
		suppliers = map[string]string{}
	}
	var updatedAt time.Time
	err := r.pool.QueryRow(ctx, query,
		sub.ID, sub.Status,
		sub.ProjectName, sub.ProjectLocation, sub.ProjectAddress,
		sub.ContactName, sub.ContactTitle, sub.ContactPhone, sub.ContactEmail, sub.ContactRole,
		sub.Authorization,
		sub.ProjectType, sub.ProjectCategory, sub.DateOfOccupancy,
		sub.TotalConstructionCost, sub.TotalGrossSqft, sub.SeatingCapacity,
		sub.CostPerSqft, sub.PrimaryFunding,
		sub.FacilityRepName, sub.FacilityRepTitle, sub.FacilityRepPhone,
		sub.FacilityRepEmail, sub.FacilityRepAddress,
		sub.ProjectSummary, sub.ProjectDescription, sub.SpecialInstructions,
		sub.PhotoCredits, sub.PhotoSpecialInstructions,
		sub.Architects, suppliers,
	).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return time.Time{}, r.rejectReason(ctx, sub.ID)
		}
		return time.Time{}, fmt.Errorf("update submission: %w", err)
	}
	return updatedAt, nil
}

// rejectReason distinguishes a write rejected by the completed guard from a
// missing row.
func (r *SubmissionRepo) rejectReason(ctx context.Context, id string) error {
	var status string
	err := r.pool.QueryRow(ctx, `SELECT status FROM submissions WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("check submission status: %w", err)
	}
	if status == entity.StatusCompleted {
		return domain.ErrSubmissionLocked
	}
	return domain.ErrNotFound
}

// MarkCompleted moves the submission to completed, idempotently: an
// already-completed row is returned unchanged with no timestamp bump.
func (r *SubmissionRepo) MarkCompleted(ctx context.Context, id string) (*entity.Submission, error) {
	_, err := r.pool.Exec(ctx,
		`UPDATE submissions SET status = 'completed', updated_at = now()
		 WHERE id = $1 AND status <> 'completed'`, id)
	if err != nil {
		return nil, fmt.Errorf("mark submission completed: %w", err)
	}
	sub, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrNotFound
	}
	return sub, nil
}

// ListAll returns every submission, newest first.
func (r *SubmissionRepo) ListAll(ctx context.Context) ([]*entity.Submission, error) {
	return r.list(ctx, ``)
}

// ListCompleted returns the completed submissions, newest first. One query,
// so the aggregation engine sees a single consistent snapshot.
func (r *SubmissionRepo) ListCompleted(ctx context.Context) ([]*entity.Submission, error) {
	return r.list(ctx, `WHERE status = 'completed'`)
}

func (r *SubmissionRepo) get(ctx context.Context, where string, arg any) (*entity.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions ` + where
	row := r.pool.QueryRow(ctx, query, arg)
	sub, err := scanSubmission(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get submission: %w", err)
	}
	return sub, nil
}

func (r *SubmissionRepo) list(ctx context.Context, where string) ([]*entity.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions ` + where + ` ORDER BY updated_at DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	defer rows.Close()

	var list []*entity.Submission
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		list = append(list, sub)
	}
	return list, rows.Err()
}

func scanSubmission(row pgx.Row) (*entity.Submission, error) {
	var s entity.Submission
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Status,
		&s.ProjectName, &s.ProjectLocation, &s.ProjectAddress,
		&s.ContactName, &s.ContactTitle, &s.ContactPhone, &s.ContactEmail, &s.ContactRole,
		&s.Authorization,
		&s.ProjectType, &s.ProjectCategory, &s.DateOfOccupancy,
		&s.TotalConstructionCost, &s.TotalGrossSqft, &s.SeatingCapacity, &s.CostPerSqft, &s.PrimaryFunding,
		&s.FacilityRepName, &s.FacilityRepTitle, &s.FacilityRepPhone, &s.FacilityRepEmail, &s.FacilityRepAddress,
		&s.ProjectSummary, &s.ProjectDescription, &s.SpecialInstructions,
		&s.PhotoCredits, &s.PhotoSpecialInstructions,
		&s.Architects, &s.ManufacturersSuppliers,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if s.ManufacturersSuppliers == nil {
		s.ManufacturersSuppliers = map[string]string{}
	}
	return &s, nil
}

func writeArgs(sub *entity.Submission) []any {
	suppliers := sub.ManufacturersSuppliers
	if suppliers == nil {
		suppliers = map[string]string{}
	}
	return []any{
		sub.ID, sub.OwnerID, sub.Status,
		sub.ProjectName, sub.ProjectLocation, sub.ProjectAddress,
		sub.ContactName, sub.ContactTitle, sub.ContactPhone, sub.ContactEmail, sub.ContactRole,
		sub.Authorization,
		sub.ProjectType, sub.ProjectCategory, sub.DateOfOccupancy,
		sub.TotalConstructionCost, sub.TotalGrossSqft, sub.SeatingCapacity, sub.CostPerSqft, sub.PrimaryFunding,
		sub.FacilityRepName, sub.FacilityRepTitle, sub.FacilityRepPhone, sub.FacilityRepEmail, sub.FacilityRepAddress,
		sub.ProjectSummary, sub.ProjectDescription, sub.SpecialInstructions,
		sub.PhotoCredits, sub.PhotoSpecialInstructions,
		sub.Architects, suppliers,
		sub.CreatedAt, sub.UpdatedAt,
	}
}
