// Package report derives the cumulative showcase statistics from a snapshot
// of completed submissions: cost analysis, category/type histograms and the
// supplier frequency ranking.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ABShowcase/architectural-showcase-portal/internal/domain/entity"
)

// CostAnalysis summarizes the parseable construction costs of the input set.
// Submissions whose cost field does not parse are excluded here but still
// counted everywhere else.
type CostAnalysis struct {
	ProjectsWithCost int
	TotalSpent       decimal.Decimal
	AverageCost      decimal.Decimal // zero when no submission carries usable cost data
}

// Bucket is one histogram entry.
type Bucket struct {
	Name  string
	Count int
}

// SupplierCount is one entry of the supplier ranking.
type SupplierCount struct {
	Name  string
	Count int
}

// Report is the full aggregation result over one snapshot of completed
// submissions. All sub-results are computed from the same input slice.
type Report struct {
	Total        int // completed submissions in the snapshot
	CostAnalysis CostAnalysis
	ByCategory   []Bucket
	ByType       []Bucket
	TopSuppliers []SupplierCount // full ranking; callers truncate for display
}

// Aggregate computes the cumulative report in one pass over subs. The slice
// is the snapshot: callers hand in the completed set as read at one instant,
// and Aggregate never re-reads storage.
//
// Histogram buckets: submissions with an empty project_category or
// project_type are excluded from the respective histogram (only named
// buckets are reported).
func Aggregate(subs []*entity.Submission) Report {
	rep := Report{Total: len(subs)}

	total := decimal.Zero
	withCost := 0
	categories := newCounter()
	types := newCounter()
	suppliers := newCounter()

	for _, sub := range subs {
		if amount, ok := ParseCost(sub.TotalConstructionCost); ok {
			total = total.Add(amount)
			withCost++
		}
		if name := strings.TrimSpace(sub.ProjectCategory); name != "" {
			categories.add(name)
		}
		if name := strings.TrimSpace(sub.ProjectType); name != "" {
			types.add(name)
		}
		for _, supplier := range supplierValues(sub) {
			suppliers.add(supplier)
		}
	}

	rep.CostAnalysis = CostAnalysis{
		ProjectsWithCost: withCost,
		TotalSpent:       total,
		AverageCost:      decimal.Zero,
	}
	if withCost > 0 {
		rep.CostAnalysis.AverageCost = total.Div(decimal.NewFromInt(int64(withCost))).Round(2)
	}

	rep.ByCategory = categories.buckets()
	rep.ByType = types.buckets()
	rep.TopSuppliers = suppliers.ranking()
	return rep
}

// ParseCost extracts a numeric amount from the free-text construction cost
// field, ignoring currency symbols and separators ("$1,200,000.50" parses as
// 1200000.50). Returns false when no usable number remains.
func ParseCost(raw string) (decimal.Decimal, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-':
			return r
		default:
			return -1 // strip $, commas, spaces, letters, everything else
		}
	}, raw)
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// supplierValues flattens a submission's supplier map values in a
// deterministic order (sorted by category key), skipping blanks. Map
// iteration order must not leak into the first-seen tie-break of the
// ranking.
func supplierValues(sub *entity.Submission) []string {
	if len(sub.ManufacturersSuppliers) == 0 {
		return nil
	}
	keys := make([]string, 0, len(sub.ManufacturersSuppliers))
	for k := range sub.ManufacturersSuppliers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := strings.TrimSpace(sub.ManufacturersSuppliers[k]); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// counter tallies occurrences while remembering first-seen order, so that
// equal counts rank deterministically.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(name string) {
	if _, seen := c.counts[name]; !seen {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

// buckets returns entries in first-seen (stable enumeration) order.
func (c *counter) buckets() []Bucket {
	out := make([]Bucket, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, Bucket{Name: name, Count: c.counts[name]})
	}
	return out
}

// ranking returns entries sorted by count descending, ties broken by
// first-seen order.
func (c *counter) ranking() []SupplierCount {
	out := make([]SupplierCount, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, SupplierCount{Name: name, Count: c.counts[name]})
	}
	// stable sort keeps first-seen order on equal counts
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
