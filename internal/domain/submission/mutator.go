// Package submission holds the pure domain logic of the submission document:
// the draft mutator that turns an edit into a new snapshot, and the lifecycle
// state machine that governs status transitions.
package submission

import (
	"fmt"
	"strconv"

	"github.com/ABShowcase/architectural-showcase-portal/internal/domain"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
)

// EditKind discriminates the three edit shapes the form produces.
type EditKind string

const (
	// EditScalar sets one flat field: (field, value).
	EditScalar EditKind = "scalar"
	// EditArchitect sets one field of one positional architect slot:
	// (index, field, value).
	EditArchitect EditKind = "architect"
	// EditSupplier inserts or overwrites one supplier-map entry:
	// (key, value). Other keys are never removed.
	EditSupplier EditKind = "supplier"
)

// Edit is one partial change to a submission. Value is always transported as
// a string; the lone boolean field (authorization) is parsed from it.
type Edit struct {
	Kind  EditKind
	Field string // scalar field name, or architect slot field name
	Index int    // architect slot, 0..entity.ArchitectSlots-1
	Key   string // supplier category key (free text, not validated)
	Value string
}

// scalarSetters declares every editable flat field. An edit naming a field
// outside this table is rejected, which is what keeps schema drift out of the
// store.
var scalarSetters = map[string]func(*entity.Submission, string) error{
	"project_name":     func(s *entity.Submission, v string) error { s.ProjectName = v; return nil },
	"project_location": func(s *entity.Submission, v string) error { s.ProjectLocation = v; return nil },
	"project_address":  func(s *entity.Submission, v string) error { s.ProjectAddress = v; return nil },
	"contact_name":     func(s *entity.Submission, v string) error { s.ContactName = v; return nil },
	"contact_title":    func(s *entity.Submission, v string) error { s.ContactTitle = v; return nil },
	"contact_phone":    func(s *entity.Submission, v string) error { s.ContactPhone = v; return nil },
	"contact_email":    func(s *entity.Submission, v string) error { s.ContactEmail = v; return nil },
	"contact_role":     func(s *entity.Submission, v string) error { s.ContactRole = v; return nil },
	"authorization": func(s *entity.Submission, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: authorization must be a boolean, got %q", domain.ErrInvalidInput, v)
		}
		s.Authorization = b
		return nil
	},
	"project_type":            func(s *entity.Submission, v string) error { s.ProjectType = v; return nil },
	"project_category":        func(s *entity.Submission, v string) error { s.ProjectCategory = v; return nil },
	"date_of_occupancy":       func(s *entity.Submission, v string) error { s.DateOfOccupancy = v; return nil },
	"total_construction_cost": func(s *entity.Submission, v string) error { s.TotalConstructionCost = v; return nil },
	"total_gross_sqft":        func(s *entity.Submission, v string) error { s.TotalGrossSqft = v; return nil },
	"seating_capacity":        func(s *entity.Submission, v string) error { s.SeatingCapacity = v; return nil },
	"cost_per_sqft":           func(s *entity.Submission, v string) error { s.CostPerSqft = v; return nil },
	"primary_funding":         func(s *entity.Submission, v string) error { s.PrimaryFunding = v; return nil },
	"facility_rep_name":       func(s *entity.Submission, v string) error { s.FacilityRepName = v; return nil },
	"facility_rep_title":      func(s *entity.Submission, v string) error { s.FacilityRepTitle = v; return nil },
	"facility_rep_phone":      func(s *entity.Submission, v string) error { s.FacilityRepPhone = v; return nil },
	"facility_rep_email":      func(s *entity.Submission, v string) error { s.FacilityRepEmail = v; return nil },
	"facility_rep_address":    func(s *entity.Submission, v string) error { s.FacilityRepAddress = v; return nil },
	"project_summary":         func(s *entity.Submission, v string) error { s.ProjectSummary = v; return nil },
	"project_description":     func(s *entity.Submission, v string) error { s.ProjectDescription = v; return nil },
	"special_instructions":    func(s *entity.Submission, v string) error { s.SpecialInstructions = v; return nil },
	"photo_credits":           func(s *entity.Submission, v string) error { s.PhotoCredits = v; return nil },
	"photo_special_instructions": func(s *entity.Submission, v string) error {
		s.PhotoSpecialInstructions = v
		return nil
	},
}

// architectSetters declares the editable fields of one architect slot.
var architectSetters = map[string]func(*entity.ArchitectEntry, string){
	"firm_name": func(a *entity.ArchitectEntry, v string) { a.FirmName = v },
	"email":     func(a *entity.ArchitectEntry, v string) { a.Email = v },
	"phone":     func(a *entity.ArchitectEntry, v string) { a.Phone = v },
	"website":   func(a *entity.ArchitectEntry, v string) { a.Website = v },
	"address":   func(a *entity.ArchitectEntry, v string) { a.Address = v },
}

// Apply produces a new snapshot with the edit applied. The input snapshot is
// taken by value and never mutated: the architects array copies with the
// struct and the supplier map is cloned before any insert, so callers may
// keep the prior snapshot for comparison or rollback.
//
// Apply is pure: no I/O, deterministic, and on error the returned snapshot
// equals the input.
func Apply(snap entity.Submission, edit Edit) (entity.Submission, error) {
	switch edit.Kind {
	case EditScalar:
		setter, ok := scalarSetters[edit.Field]
		if !ok {
			return snap, fmt.Errorf("%w: %q", domain.ErrUnknownField, edit.Field)
		}
		if err := setter(&snap, edit.Value); err != nil {
			return snap, err
		}
		return snap, nil

	case EditArchitect:
		if edit.Index < 0 || edit.Index >= entity.ArchitectSlots {
			return snap, fmt.Errorf("%w: architect slot %d", domain.ErrUnknownField, edit.Index)
		}
		setter, ok := architectSetters[edit.Field]
		if !ok {
			return snap, fmt.Errorf("%w: architects[%d].%s", domain.ErrUnknownField, edit.Index, edit.Field)
		}
		setter(&snap.Architects[edit.Index], edit.Value)
		return snap, nil

	case EditSupplier:
		if edit.Key == "" {
			return snap, fmt.Errorf("%w: empty supplier category", domain.ErrInvalidInput)
		}
		suppliers := snap.CloneSuppliers()
		suppliers[edit.Key] = edit.Value
		snap.ManufacturersSuppliers = suppliers
		return snap, nil

	default:
		return snap, fmt.Errorf("%w: edit kind %q", domain.ErrInvalidInput, edit.Kind)
	}
}

// ScalarFieldNames returns the declared flat field names, for reference
// endpoints and error messages.
func ScalarFieldNames() []string {
	names := make([]string, 0, len(scalarSetters))
	for name := range scalarSetters {
		names = append(names, name)
	}
	return names
}
