package models

import (
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Status enumerates the request workflow states. Transition bookkeeping
// lives in the lifecycle package.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

// PaymentStatus enumerates payment states.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// SacramentRequest is the shared shape of every request the parish office
// processes, stored in the sacrament_requests table discriminated by
// RequestType. Type-specific intake fields live in Details and are flattened
// into the JSON representation for the legacy admin pages.
//
// ScheduleDate and ScheduleTime are display-formatted strings, carried over
// from the legacy data; parsing them would break stored records.
type SacramentRequest struct {
	ID            string `db:"id" json:"id"`
	RequestType   string `db:"request_type" json:"requestType"`
	RequestNumber string `db:"request_number" json:"requestNumber"`
	Sacrament     string `db:"sacrament" json:"sacrament"`
	SubjectName   string `db:"subject_name" json:"subjectName"`
	SubType       string `db:"sub_type" json:"subType,omitempty"`
	ScheduleDate  string `db:"schedule_date" json:"scheduleDate"`
	ScheduleTime  string `db:"schedule_time" json:"scheduleTime"`
	ContactNumber string `db:"contact_number" json:"contactNumber,omitempty"`
	Address       string `db:"address" json:"address,omitempty"`

	Status        Status        `db:"status" json:"status"`
	PaymentStatus PaymentStatus `db:"payment_status" json:"paymentStatus"`
	Fee           float64       `db:"fee" json:"fee"`

	PaymentDate      string `db:"payment_date" json:"paymentDate,omitempty"`
	PaymentMethod    string `db:"payment_method" json:"paymentMethod,omitempty"`
	PaymentReference string `db:"payment_reference" json:"paymentReference,omitempty"`
	PaymentNotes     string `db:"payment_notes" json:"paymentNotes,omitempty"`

	// Audit groups; the lifecycle engine guarantees at most one of the four
	// holds values at any time. Field names mirror the legacy wire contract.
	CancellationReason string     `db:"cancellation_reason" json:"cancellation_reason"`
	CancelledBy        string     `db:"cancelled_by" json:"cancelled_by"`
	CancelledAt        *time.Time `db:"cancelled_at" json:"cancelled_at,omitempty"`
	RejectionReason    string     `db:"rejection_reason" json:"rejection_reason"`
	RejectedBy         string     `db:"rejected_by" json:"rejected_by"`
	RejectedAt         *time.Time `db:"rejected_at" json:"rejected_at,omitempty"`
	ApprovedBy         string     `db:"approved_by" json:"approved_by,omitempty"`
	ApprovedAt         *time.Time `db:"approved_at" json:"approved_at,omitempty"`
	ReadyBy            string     `db:"ready_by" json:"ready_by,omitempty"`
	ReadyAt            *time.Time `db:"ready_at" json:"ready_at,omitempty"`

	SubmittedByEmail string         `db:"submitted_by_email" json:"submittedByEmail,omitempty"`
	Details          types.JSONText `db:"details" json:"details,omitempty"`

	Version     int64     `db:"version" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	LastUpdated time.Time `db:"last_updated" json:"lastUpdated"`
}

// MarshalJSON flattens the Details document into the top level so clients
// keep seeing type-specific fields (godfather, nameOfDeceased, intention...)
// where the legacy API put them. Common columns win on key collisions.
func (r SacramentRequest) MarshalJSON() ([]byte, error) {
	type alias SacramentRequest
	base, err := json.Marshal(alias(r))
	if err != nil {
		return nil, err
	}
	if len(r.Details) == 0 {
		return base, nil
	}

	var flat map[string]json.RawMessage
	if err := json.Unmarshal(base, &flat); err != nil {
		return nil, err
	}
	delete(flat, "details")

	var details map[string]json.RawMessage
	if err := json.Unmarshal(r.Details, &details); err != nil {
		// Malformed details should not make the whole record unreadable.
		return base, nil
	}
	for key, value := range details {
		if _, taken := flat[key]; !taken {
			flat[key] = value
		}
	}
	return json.Marshal(flat)
}

// ClearAudit resets every audit group. Used when a request returns to
// pending.
func (r *SacramentRequest) ClearAudit() {
	r.CancellationReason = ""
	r.CancelledBy = ""
	r.CancelledAt = nil
	r.RejectionReason = ""
	r.RejectedBy = ""
	r.RejectedAt = nil
	r.ApprovedBy = ""
	r.ApprovedAt = nil
	r.ReadyBy = ""
	r.ReadyAt = nil
}
