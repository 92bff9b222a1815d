package models

import "time"

// Activity actions recorded in the ledger.
const (
	ActivityCreate        = "CREATE"
	ActivityUpdate        = "UPDATE"
	ActivityPaymentUpdate = "PAYMENT_UPDATE"
	ActivityDelete        = "DELETE"
	ActivityActivated     = "ACTIVATED"
	ActivityDeactivated   = "DEACTIVATED"
	ActivityLogin         = "LOGIN"
	ActivityRegister      = "REGISTER"
)

// ActivityLog is an append-only audit record of who did what to which
// entity. Entries are never mutated or deleted.
type ActivityLog struct {
	ID           string    `db:"id" json:"id"`
	Action       string    `db:"action" json:"action"`
	EntityType   string    `db:"entity_type" json:"entityType"`
	SubjectLabel string    `db:"subject_label" json:"subjectLabel"`
	ActorLabel   string    `db:"actor_label" json:"actorLabel"`
	Timestamp    time.Time `db:"timestamp" json:"timestamp"`
}
