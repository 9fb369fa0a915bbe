package dto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ABShowcase/architectural-showcase-portal/internal/domain"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/submission"
)

// EditDTO is one edit operation in a PUT /api/submissions/:id body. Exactly
// one of the three shapes applies:
//
//	{"field": "project_name", "value": "Falcon Fieldhouse"}
//	{"collection": "architects", "index": 0, "field": "firm_name", "value": "..."}
//	{"category": "Pools - Heaters", "value": "Acme"}
//
// Value may be a JSON string, boolean or number; it is normalized to a
// string before reaching the mutator.
type EditDTO struct {
	Field      string `json:"field,omitempty"`
	Collection string `json:"collection,omitempty"`
	Index      *int   `json:"index,omitempty"`
	Category   string `json:"category,omitempty"`
	Value      any    `json:"value"`
}

// ToEdit converts the wire shape into a domain edit.
func (e EditDTO) ToEdit() (submission.Edit, error) {
	value, err := stringValue(e.Value)
	if err != nil {
		return submission.Edit{}, err
	}

	switch {
	case e.Category != "":
		return submission.Edit{Kind: submission.EditSupplier, Key: e.Category, Value: value}, nil
	case e.Collection != "":
		if e.Collection != "architects" {
			return submission.Edit{}, fmt.Errorf("%w: collection %q", domain.ErrUnknownField, e.Collection)
		}
		if e.Index == nil {
			return submission.Edit{}, fmt.Errorf("%w: architects edit requires an index", domain.ErrInvalidInput)
		}
		return submission.Edit{
			Kind:  submission.EditArchitect,
			Index: *e.Index,
			Field: e.Field,
			Value: value,
		}, nil
	case e.Field != "":
		return submission.Edit{Kind: submission.EditScalar, Field: e.Field, Value: value}, nil
	default:
		return submission.Edit{}, fmt.Errorf("%w: edit names no field, collection or category", domain.ErrInvalidInput)
	}
}

func stringValue(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case bool:
		return strconv.FormatBool(t), nil
	case float64: // encoding/json's number type
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: unsupported value type %T", domain.ErrInvalidInput, v)
	}
}

// UpdateSubmissionRequest body of PUT /api/submissions/:id.
type UpdateSubmissionRequest struct {
	Edits []EditDTO `json:"edits"`
}

// ArchitectDTO one positional architect slot.
type ArchitectDTO struct {
	Role     string `json:"role"`
	FirmName string `json:"firm_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Address  string `json:"address"`
}

// SubmissionResponse full document view returned to the owning entrant and
// to admin listings.
type SubmissionResponse struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Status  string `json:"status"`

	ProjectName     string `json:"project_name"`
	ProjectLocation string `json:"project_location"`
	ProjectAddress  string `json:"project_address"`
	ContactName     string `json:"contact_name"`
	ContactTitle    string `json:"contact_title"`
	ContactPhone    string `json:"contact_phone"`
	ContactEmail    string `json:"contact_email"`
	ContactRole     string `json:"contact_role"`
	Authorization   bool   `json:"authorization"`

	ProjectType           string `json:"project_type"`
	ProjectCategory       string `json:"project_category"`
	DateOfOccupancy       string `json:"date_of_occupancy"`
	TotalConstructionCost string `json:"total_construction_cost"`
	TotalGrossSqft        string `json:"total_gross_sqft"`
	SeatingCapacity       string `json:"seating_capacity"`
	CostPerSqft           string `json:"cost_per_sqft"`
	PrimaryFunding        string `json:"primary_funding"`
	FacilityRepName       string `json:"facility_rep_name"`
	FacilityRepTitle      string `json:"facility_rep_title"`
	FacilityRepPhone      string `json:"facility_rep_phone"`
	FacilityRepEmail      string `json:"facility_rep_email"`
	FacilityRepAddress    string `json:"facility_rep_address"`

	ProjectSummary      string `json:"project_summary"`
	ProjectDescription  string `json:"project_description"`
	SpecialInstructions string `json:"special_instructions"`

	PhotoCredits             string `json:"photo_credits"`
	PhotoSpecialInstructions string `json:"photo_special_instructions"`

	Architects             []ArchitectDTO    `json:"architects"`
	ManufacturersSuppliers map[string]string `json:"manufacturers_suppliers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdminSubmissionResponse is the admin-listing view: the full document plus
// the firm and email of the registered account, joined server-side so the
// dashboard table never has to resolve owner ids itself.
type AdminSubmissionResponse struct {
	SubmissionResponse
	FirmName string `json:"firm_name"`
	Email    string `json:"email"`
}

// SaveStatusResponse body of GET /api/submissions/:id/save-status.
// Status is one of idle, pending, saving.
type SaveStatusResponse struct {
	Status string `json:"status"`
}

// FromSubmission builds the response view of a submission snapshot.
func FromSubmission(s *entity.Submission, slotRoles [entity.ArchitectSlots]string) *SubmissionResponse {
	if s == nil {
		return nil
	}
	architects := make([]ArchitectDTO, entity.ArchitectSlots)
	for i, a := range s.Architects {
		architects[i] = ArchitectDTO{
			Role:     slotRoles[i],
			FirmName: a.FirmName,
			Email:    a.Email,
			Phone:    a.Phone,
			Website:  a.Website,
			Address:  a.Address,
		}
	}
	suppliers := s.ManufacturersSuppliers
	if suppliers == nil {
		suppliers = map[string]string{}
	}
	return &SubmissionResponse{
		ID:                       s.ID,
		OwnerID:                  s.OwnerID,
		Status:                   s.Status,
		ProjectName:              s.ProjectName,
		ProjectLocation:          s.ProjectLocation,
		ProjectAddress:           s.ProjectAddress,
		ContactName:              s.ContactName,
		ContactTitle:             s.ContactTitle,
		ContactPhone:             s.ContactPhone,
		ContactEmail:             s.ContactEmail,
		ContactRole:              s.ContactRole,
		Authorization:            s.Authorization,
		ProjectType:              s.ProjectType,
		ProjectCategory:          s.ProjectCategory,
		DateOfOccupancy:          s.DateOfOccupancy,
		TotalConstructionCost:    s.TotalConstructionCost,
		TotalGrossSqft:           s.TotalGrossSqft,
		SeatingCapacity:          s.SeatingCapacity,
		CostPerSqft:              s.CostPerSqft,
		PrimaryFunding:           s.PrimaryFunding,
		FacilityRepName:          s.FacilityRepName,
		FacilityRepTitle:         s.FacilityRepTitle,
		FacilityRepPhone:         s.FacilityRepPhone,
		FacilityRepEmail:         s.FacilityRepEmail,
		FacilityRepAddress:       s.FacilityRepAddress,
		ProjectSummary:           s.ProjectSummary,
		ProjectDescription:       s.ProjectDescription,
		SpecialInstructions:      s.SpecialInstructions,
		PhotoCredits:             s.PhotoCredits,
		PhotoSpecialInstructions: s.PhotoSpecialInstructions,
		Architects:               architects,
		ManufacturersSuppliers:   suppliers,
		CreatedAt:                s.CreatedAt,
		UpdatedAt:                s.UpdatedAt,
	}
}

// FromSubmissionWithOwner builds the admin view. owner may be nil when the
// registering account has been removed; the firm and email then render empty.
func FromSubmissionWithOwner(s *entity.Submission, owner *entity.User, slotRoles [entity.ArchitectSlots]string) *AdminSubmissionResponse {
	base := FromSubmission(s, slotRoles)
	if base == nil {
		return nil
	}
	out := &AdminSubmissionResponse{SubmissionResponse: *base}
	if owner != nil {
		out.FirmName = owner.FirmName
		out.Email = owner.Email
	}
	return out
}
