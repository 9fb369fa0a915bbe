package entity

import "time"

// Submission lifecycle statuses. Transitions are one-directional:
// draft -> in_progress -> completed, with completed terminal.
const (
	StatusDraft      = "draft"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// ArchitectSlots is the number of positional architect entries on a
// submission (Architect of Record, Associate Architect, Design Architect).
const ArchitectSlots = 3

// ArchitectEntry is one firm listed in the architect section. All fields are
// optional free text.
type ArchitectEntry struct {
	FirmName string `json:"firm_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Address  string `json:"address"`
}

// Submission is the single per-user project-entry document. A value of this
// type is a snapshot: the draft mutator copies it before every change, so a
// held snapshot is never mutated underneath the holder.
//
// All form fields are optional free text at rest; required-field checks are
// advisory at the UI boundary only. UpdatedAt is owned by the store and set
// on every successful persist, never taken from the client.
type Submission struct {
	ID      string
	OwnerID string
	Status  string

	// 1.0 Submission information
	ProjectName     string
	ProjectLocation string
	ProjectAddress  string
	ContactName     string
	ContactTitle    string
	ContactPhone    string
	ContactEmail    string
	ContactRole     string
	Authorization   bool // permission to publish materials and photographs

	// 2.0 Project information
	ProjectType           string
	ProjectCategory       string
	DateOfOccupancy       string
	TotalConstructionCost string // free text; numeric content feeds cost aggregation
	TotalGrossSqft        string
	SeatingCapacity       string
	CostPerSqft           string
	PrimaryFunding        string
	FacilityRepName       string
	FacilityRepTitle      string
	FacilityRepPhone      string
	FacilityRepEmail      string
	FacilityRepAddress    string

	// 3.0 Project details
	ProjectSummary      string
	ProjectDescription  string
	SpecialInstructions string

	// 5.0 Image submission
	PhotoCredits             string
	PhotoSpecialInstructions string

	// Architects is positionally bound to the roles in
	// showcase.ArchitectSlotRoles. Fixed size, value-copied with the struct.
	Architects [ArchitectSlots]ArchitectEntry

	// ManufacturersSuppliers maps a category name to a free-text supplier
	// name. Keys are not validated against the category catalogue.
	ManufacturersSuppliers map[string]string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Completed reports whether the submission is in its terminal state.
func (s *Submission) Completed() bool {
	return s.Status == StatusCompleted
}

// CloneSuppliers returns a copy of the supplier map, never nil. Used by the
// mutator to keep snapshots independent.
func (s *Submission) CloneSuppliers() map[string]string {
	out := make(map[string]string, len(s.ManufacturersSuppliers)+1)
	for k, v := range s.ManufacturersSuppliers {
		out[k] = v
	}
	return out
}
