package models

// LedgerCounts summarizes one submission ledger. Open counts the entries
// still in the variant's initial status.
type LedgerCounts struct {
	Total int `json:"total"`
	Open  int `json:"open"`
}

type DashboardCounts struct {
	TotalAccounts       int          `json:"total_accounts"`
	ActiveAccounts      int          `json:"active_accounts"`
	NewAccountsThisWeek int          `json:"new_accounts_this_week"`
	ServiceRequests     LedgerCounts `json:"service_requests"`
	ContactMessages     LedgerCounts `json:"contact_messages"`
	BrochureRequests    LedgerCounts `json:"brochure_requests"`
	TotalProducts       int          `json:"total_products"`
	TotalCategories     int          `json:"total_categories"`
}

type DashboardSummary struct {
	Counts                 *DashboardCounts  `json:"counts"`
	RecentServiceRequests  []ServiceRequest  `json:"recent_service_requests"`
	RecentContactMessages  []ContactMessage  `json:"recent_contact_messages"`
	RecentBrochureRequests []BrochureRequest `json:"recent_brochure_requests"`
}
