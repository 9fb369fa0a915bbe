package submission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ABShowcase/architectural-showcase-portal/internal/domain"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/submission"
)

// ──────────────────────────────────────────────────────────────────────────────
// Scalar edits
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_ScalarField(t *testing.T) {
	snap := entity.Submission{ProjectName: "old"}

	out, err := submission.Apply(snap, submission.Edit{
		Kind: submission.EditScalar, Field: "project_name", Value: "Falcon Fieldhouse",
	})
	require.NoError(t, err)

	assert.Equal(t, "Falcon Fieldhouse", out.ProjectName)
	assert.Equal(t, "old", snap.ProjectName, "input snapshot must stay untouched")
}

func TestApply_UnknownScalarFieldRejected(t *testing.T) {
	snap := entity.Submission{}

	out, err := submission.Apply(snap, submission.Edit{
		Kind: submission.EditScalar, Field: "no_such_field", Value: "x",
	})

	assert.ErrorIs(t, err, domain.ErrUnknownField)
	assert.Equal(t, snap, out, "failed edit must return the input unchanged")
}

func TestApply_AuthorizationParsesBool(t *testing.T) {
	out, err := submission.Apply(entity.Submission{}, submission.Edit{
		Kind: submission.EditScalar, Field: "authorization", Value: "true",
	})
	require.NoError(t, err)
	assert.True(t, out.Authorization)

	_, err = submission.Apply(entity.Submission{}, submission.Edit{
		Kind: submission.EditScalar, Field: "authorization", Value: "yes please",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Architect slot edits
// ──────────────────────────────────────────────────────────────────────────────

func TestApply_ArchitectSlot(t *testing.T) {
	snap := entity.Submission{}

	out, err := submission.Apply(snap, submission.Edit{
		Kind: submission.EditArchitect, Index: 1, Field: "firm_name", Value: "Studio North",
	})
	require.NoError(t, err)

	assert.Equal(t, "Studio North", out.Architects[1].FirmName)
	assert.Empty(t, out.Architects[0].FirmName)
	assert.Empty(t, snap.Architects[1].FirmName, "input snapshot must stay untouched")
}

func TestApply_ArchitectSlotOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, entity.ArchitectSlots} {
		_, err := submission.Apply(entity.Submission{}, submission.Edit{
			Kind: submission.EditArchitect, Index: idx, Field: "firm_name", Value: "x",
		})
		assert.ErrorIs(t, err, domain.ErrUnknownField, "index %d", idx)
	}
}

func TestApply_ArchitectUnknownFieldRejected(t *testing.T) {
	_, err := submission.Apply(entity.Submission{}, submission.Edit{
		Kind: submission.EditArchitect, Index: 0, Field: "fax", Value: "x",
	})
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

// ──────────────────────────────────────────────────────────────────────────────
// Supplier map edits
// ──────────────────────────────────────────────────────────────────────────────

// A supplier edit touches exactly one key; the others survive, and the input
// snapshot's map is never shared with the output.
func TestApply_SupplierInsertAndOverwrite(t *testing.T) {
	snap := entity.Submission{
		ManufacturersSuppliers: map[string]string{"Pools - Heaters": "Acme"},
	}

	out, err := submission.Apply(snap, submission.Edit{
		Kind: submission.EditSupplier, Key: "Lighting", Value: "Lumex",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"Pools - Heaters": "Acme",
		"Lighting":        "Lumex",
	}, out.ManufacturersSuppliers)

	out2, err := submission.Apply(out, submission.Edit{
		Kind: submission.EditSupplier, Key: "Lighting", Value: "Brightline",
	})
	require.NoError(t, err)
	assert.Equal(t, "Brightline", out2.ManufacturersSuppliers["Lighting"])
	assert.Equal(t, "Lumex", out.ManufacturersSuppliers["Lighting"],
		"overwriting in a later snapshot must not leak into the earlier one")
	assert.Equal(t, map[string]string{"Pools - Heaters": "Acme"}, snap.ManufacturersSuppliers)
}

func TestApply_SupplierNilMap(t *testing.T) {
	out, err := submission.Apply(entity.Submission{}, submission.Edit{
		Kind: submission.EditSupplier, Key: "Flooring", Value: "Oakline",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Flooring": "Oakline"}, out.ManufacturersSuppliers)
}

func TestApply_SupplierEmptyKeyRejected(t *testing.T) {
	_, err := submission.Apply(entity.Submission{}, submission.Edit{
		Kind: submission.EditSupplier, Key: "", Value: "x",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_UnknownKindRejected(t *testing.T) {
	_, err := submission.Apply(entity.Submission{}, submission.Edit{Kind: "bulk"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
