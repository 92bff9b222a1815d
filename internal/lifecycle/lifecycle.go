// Package lifecycle implements the status transition and audit bookkeeping
// shared by every sacrament request type.
package lifecycle

import (
	"time"

	"github.com/sjmp-dev/parish-admin-api/internal/models"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
)

// DefaultActor is recorded when the caller does not identify themselves.
const DefaultActor = "admin"

// Profile parameterizes the engine per request type.
type Profile struct {
	// AllowReady enables the ready milestone (certificate pick-up flow).
	AllowReady bool
}

// Engine computes the complete field delta for a requested status change.
// Transitions are a policy, not a strict state machine: any status may be
// requested from any status, including re-opening a terminal one, which is
// how the office corrects clerical mistakes.
type Engine struct {
	profile Profile
	now     func() time.Time
}

// New constructs an Engine for the given profile.
func New(profile Profile) *Engine {
	return &Engine{profile: profile, now: time.Now}
}

// WithClock overrides the engine clock. Test hook.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Transition applies the requested status to req in place, maintaining the
// invariant that at most one audit group holds values afterwards.
// Cancellation and rejection require a reason; the legacy system silently
// skipped the audit fields instead, which left unexplained terminal records.
func (e *Engine) Transition(req *models.SacramentRequest, target models.Status, reason, actor string) error {
	if target == "" {
		return appErrors.Clone(appErrors.ErrValidation, "status is required")
	}
	if actor == "" {
		actor = DefaultActor
	}
	now := e.now().UTC()

	switch target {
	case models.StatusCancelled:
		if reason == "" {
			return appErrors.Clone(appErrors.ErrValidation, "cancellation_reason is required to cancel a request")
		}
		req.ClearAudit()
		req.CancellationReason = reason
		req.CancelledBy = actor
		req.CancelledAt = &now

	case models.StatusRejected:
		if reason == "" {
			return appErrors.Clone(appErrors.ErrValidation, "rejection_reason is required to reject a request")
		}
		req.ClearAudit()
		req.RejectionReason = reason
		req.RejectedBy = actor
		req.RejectedAt = &now

	case models.StatusApproved:
		req.ClearAudit()
		req.ApprovedBy = actor
		req.ApprovedAt = &now

	case models.StatusReady:
		if !e.profile.AllowReady {
			return appErrors.Clone(appErrors.ErrValidation, "ready is not a valid status for this request type")
		}
		approvedBy, approvedAt := req.ApprovedBy, req.ApprovedAt
		req.ClearAudit()
		req.ReadyBy = actor
		req.ReadyAt = &now
		// Ready implies approved; keep or backfill the approval pair.
		if approvedBy != "" {
			req.ApprovedBy = approvedBy
			req.ApprovedAt = approvedAt
		} else {
			req.ApprovedBy = actor
			req.ApprovedAt = &now
		}

	case models.StatusPending:
		req.ClearAudit()

	default:
		// Statuses such as completed or in-process are recorded verbatim
		// with no audit side effects.
	}

	req.Status = target
	req.LastUpdated = now
	return nil
}
