package dto

import "github.com/shopspring/decimal"

// StatsResponse body of GET /api/admin/stats: counts over all submissions
// regardless of status.
type StatsResponse struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Users      int `json:"users"`
}

// CostAnalysisDTO numeric cost summary over submissions with parseable cost
// data.
type CostAnalysisDTO struct {
	ProjectsWithCost int             `json:"projectsWithCost"`
	TotalSpent       decimal.Decimal `json:"totalSpent"`
	AverageCost      decimal.Decimal `json:"averageCost"`
}

// NameCountDTO one histogram bucket or ranking entry.
type NameCountDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CumulativeReportDTO body of GET /api/admin/reports/summary. When no
// completed submissions exist, Total is 0 and every sub-result is empty;
// it is never an error.
type CumulativeReportDTO struct {
	Total        int             `json:"total"`
	CostAnalysis CostAnalysisDTO `json:"costAnalysis"`
	ByCategory   []NameCountDTO  `json:"byCategory"`
	ByType       []NameCountDTO  `json:"byType"`
	TopSuppliers []NameCountDTO  `json:"topSuppliers"`
}

// CataloguesResponse body of GET /api/catalogues.
type CataloguesResponse struct {
	ManufacturerCategories []string `json:"manufacturer_categories"`
	ArchitectRoles         []string `json:"architect_roles"`
}
