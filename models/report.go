package models

// MonthlyReportItem counts the requests and allocations created in one month.
type MonthlyReportItem struct {
	Month           string `json:"month"`
	RequestCount    int    `json:"request_count"`
	AllocationCount int    `json:"allocation_count"`
}
