package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/report"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

func completedSub(cost, category, ptype string, suppliers map[string]string) *entity.Submission {
	return &entity.Submission{
		Status:                 entity.StatusCompleted,
		TotalConstructionCost:  cost,
		ProjectCategory:        category,
		ProjectType:            ptype,
		ManufacturersSuppliers: suppliers,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Cost analysis
// ──────────────────────────────────────────────────────────────────────────────

// Known vector: four submissions with costs "1000000", "2000000", "not a
// number" and "" must yield 2 projects with cost, total 3000000 and average
// 1500000. Unparseable costs are excluded from the money math but the
// submissions still count toward Total.
func TestAggregate_CostAnalysisVector(t *testing.T) {
	subs := []*entity.Submission{
		completedSub("1000000", "", "", nil),
		completedSub("2000000", "", "", nil),
		completedSub("not a number", "", "", nil),
		completedSub("", "", "", nil),
	}

	rep := report.Aggregate(subs)

	assert.Equal(t, 4, rep.Total)
	assert.Equal(t, 2, rep.CostAnalysis.ProjectsWithCost)
	assert.True(t, rep.CostAnalysis.TotalSpent.Equal(decimal.NewFromInt(3_000_000)),
		"total spent must be 3000000, got %s", rep.CostAnalysis.TotalSpent)
	assert.True(t, rep.CostAnalysis.AverageCost.Equal(decimal.NewFromInt(1_500_000)),
		"average must be 1500000, got %s", rep.CostAnalysis.AverageCost)
}

func TestAggregate_NoData(t *testing.T) {
	rep := report.Aggregate(nil)

	assert.Equal(t, 0, rep.Total)
	assert.Equal(t, 0, rep.CostAnalysis.ProjectsWithCost)
	assert.True(t, rep.CostAnalysis.TotalSpent.IsZero())
	assert.True(t, rep.CostAnalysis.AverageCost.IsZero())
	assert.Empty(t, rep.ByCategory)
	assert.Empty(t, rep.ByType)
	assert.Empty(t, rep.TopSuppliers)
}

func TestParseCost_CurrencyFormats(t *testing.T) {
	cases := []struct {
		raw      string
		expected string
		ok       bool
	}{
		{"$1,200,000.50", "1200000.50", true},
		{"1000000", "1000000", true},
		{"USD 2 500 000", "2500000", true},
		{"$3.5M", "3.5", true}, // digits survive, suffix letters do not
		{"", "0", false},
		{"TBD", "0", false},
		{"$", "0", false},
	}

	for _, tc := range cases {
		amount, ok := report.ParseCost(tc.raw)
		assert.Equal(t, tc.ok, ok, "raw=%q", tc.raw)
		if tc.ok {
			want, err := decimal.NewFromString(tc.expected)
			require.NoError(t, err)
			assert.True(t, amount.Equal(want), "raw=%q: want %s got %s", tc.raw, want, amount)
		}
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Histograms
// ──────────────────────────────────────────────────────────────────────────────

// Submissions with an empty category or type are left out of the respective
// histogram entirely; there is no "unknown" bucket.
func TestAggregate_HistogramsExcludeEmpty(t *testing.T) {
	subs := []*entity.Submission{
		completedSub("", "Aquatics", "Collegiate", nil),
		completedSub("", "Aquatics", "", nil),
		completedSub("", "", "Municipal", nil),
		completedSub("", "  ", "Collegiate", nil), // whitespace-only counts as empty
	}

	rep := report.Aggregate(subs)

	assert.Equal(t, []report.Bucket{{Name: "Aquatics", Count: 2}}, rep.ByCategory)
	assert.Equal(t, []report.Bucket{
		{Name: "Collegiate", Count: 2},
		{Name: "Municipal", Count: 1},
	}, rep.ByType)
}

// ──────────────────────────────────────────────────────────────────────────────
// Supplier ranking
// ──────────────────────────────────────────────────────────────────────────────

// Acme appears three times across submissions and must rank first; Zeta and
// Beta tie at one mention each and must keep first-seen order (Zeta was
// encountered before Beta).
func TestAggregate_SupplierRankingWithTieBreak(t *testing.T) {
	subs := []*entity.Submission{
		completedSub("", "", "", map[string]string{
			"Pools - Heaters": "Acme",
			"Pools - Pumps":   "Zeta", // "Pools - Heaters" sorts before "Pools - Pumps"
		}),
		completedSub("", "", "", map[string]string{
			"Flooring":    "Acme",
			"Lighting":    "Beta",
			"Scoreboards": "Acme",
		}),
	}

	rep := report.Aggregate(subs)

	require.Len(t, rep.TopSuppliers, 3)
	assert.Equal(t, report.SupplierCount{Name: "Acme", Count: 3}, rep.TopSuppliers[0])
	assert.Equal(t, report.SupplierCount{Name: "Zeta", Count: 1}, rep.TopSuppliers[1])
	assert.Equal(t, report.SupplierCount{Name: "Beta", Count: 1}, rep.TopSuppliers[2])
}

// Blank supplier values are noise from half-filled forms and never count.
func TestAggregate_SupplierBlanksSkipped(t *testing.T) {
	subs := []*entity.Submission{
		completedSub("", "", "", map[string]string{
			"Pools - Heaters": "  ",
			"Pools - Pumps":   "",
			"Lighting":        "Lumex",
		}),
	}

	rep := report.Aggregate(subs)

	assert.Equal(t, []report.SupplierCount{{Name: "Lumex", Count: 1}}, rep.TopSuppliers)
}
