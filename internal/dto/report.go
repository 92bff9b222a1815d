package dto

import "github.com/sjmp-dev/parish-admin-api/internal/models"

// MonthCount is one row of a month-bucketed aggregation (1 = January).
type MonthCount struct {
	Month int `db:"month" json:"month"`
	Count int `db:"count" json:"count"`
}

// TypeCount is one row of a per-type aggregation.
type TypeCount struct {
	RequestType string `db:"request_type" json:"requestType"`
	Count       int    `db:"count" json:"count"`
}

// CountResponse carries a single counter for the dashboard cards.
type CountResponse struct {
	Count int `json:"count"`
}

// MonthlyResponse carries a calendar year of counts, January first.
type MonthlyResponse struct {
	Months [12]int `json:"months"`
}

// SummaryReport is the top block of the reports page.
type SummaryReport struct {
	TotalRequests   int            `json:"totalRequests"`
	PendingRequests int            `json:"pendingRequests"`
	PaidRequests    int            `json:"paidRequests"`
	TotalRevenue    float64        `json:"totalRevenue"`
	CountsByType    map[string]int `json:"countsByType"`
}

// DistributionEntry is one slice of the sacrament distribution chart.
type DistributionEntry struct {
	Label      string  `json:"label"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// PerformanceMetric compares the current month against the previous one
// for a single request type.
type PerformanceMetric struct {
	Label         string  `json:"label"`
	CurrentMonth  int     `json:"currentMonth"`
	PreviousMonth int     `json:"previousMonth"`
	ChangePercent float64 `json:"changePercent"`
}

// RecentRequest is one row of the recent-requests report table.
type RecentRequest struct {
	RequestNumber string  `json:"requestNumber"`
	Sacrament     string  `json:"sacrament"`
	SubjectName   string  `json:"subjectName"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	Fee           float64 `json:"fee"`
	CreatedAt     string  `json:"createdAt"`
}

// ScheduleEntry is one calendar row, in the shape the legacy calendar
// pages bind to.
type ScheduleEntry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Contact       string `json:"contact"`
	Address       string `json:"address"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	RequestNumber string `json:"requestNumber"`
	Notes         string `json:"notes"`
}

// HistoryResponse groups a parishioner's submissions for the history page.
type HistoryResponse struct {
	Email    string                    `json:"email"`
	Total    int                       `json:"total"`
	Requests []models.SacramentRequest `json:"requests"`
}
