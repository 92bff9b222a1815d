package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx/types"
	"go.uber.org/zap"

	"github.com/sjmp-dev/parish-admin-api/internal/lifecycle"
	"github.com/sjmp-dev/parish-admin-api/internal/models"
	"github.com/sjmp-dev/parish-admin-api/internal/registry"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
	"github.com/sjmp-dev/parish-admin-api/pkg/reqnum"
)

type requestStore interface {
	Create(ctx context.Context, req *models.SacramentRequest) error
	ListByType(ctx context.Context, requestType string) ([]models.SacramentRequest, error)
	FindByID(ctx context.Context, requestType, id string) (*models.SacramentRequest, error)
	Update(ctx context.Context, req *models.SacramentRequest) error
	Delete(ctx context.Context, requestType, id string) error
	RequestNumberExists(ctx context.Context, number string) (bool, error)
}

type cacheInvalidator interface {
	DeleteByPattern(ctx context.Context, pattern string) error
}

// RequestService runs the shared intake/update/payment workflow for one
// registered request type. One instance is built per registry entry; all
// type differences come from the registry, none from code.
type RequestService struct {
	rt       registry.RequestType
	repo     requestStore
	numbers  *reqnum.Generator
	engine   *lifecycle.Engine
	activity activityRecorder
	cache    cacheInvalidator
	logger   *zap.Logger
}

// NewRequestService constructs the workflow service for one request type.
func NewRequestService(rt registry.RequestType, repo requestStore, activity activityRecorder, logger *zap.Logger) *RequestService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RequestService{
		rt:       rt,
		repo:     repo,
		numbers:  reqnum.New(repo.RequestNumberExists),
		engine:   lifecycle.New(rt.Profile),
		activity: activity,
		logger:   logger,
	}
}

// WithCache purges this type's cached dashboard counters after writes,
// keeping the dashboards read-your-writes consistent.
func (s *RequestService) WithCache(cache cacheInvalidator) *RequestService {
	s.cache = cache
	return s
}

// Type returns the registry entry this service is bound to.
func (s *RequestService) Type() registry.RequestType {
	return s.rt
}

// Create validates the intake payload, assigns identifiers and fee, and
// persists the request in pending state. The full payload is kept in the
// details document so the admin pages see every submitted field.
func (s *RequestService) Create(ctx context.Context, payload map[string]interface{}) (*models.SacramentRequest, error) {
	for _, key := range s.rt.RequiredKeys {
		if stringValue(payload[key]) == "" {
			return nil, appErrors.ErrValidation.Clone(fmt.Sprintf("%s is required", key))
		}
	}

	subject := s.subjectFrom(payload)
	subType := stringValue(payload[s.rt.SubTypeKey])

	number, err := s.numbers.Generate(ctx, s.rt.NumberPrefix)
	if err != nil {
		return nil, fmt.Errorf("assign %s request number: %w", s.rt.Name, err)
	}

	if s.rt.CertificateSerial {
		serial, err := s.numbers.CertificateNumber(registry.CertificatePrefixes[subType])
		if err != nil {
			return nil, fmt.Errorf("assign certificate number: %w", err)
		}
		payload["certificateNumber"] = serial
	}

	details, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s details: %w", s.rt.Name, err)
	}

	req := &models.SacramentRequest{
		RequestType:      s.rt.Name,
		RequestNumber:    number,
		Sacrament:        s.rt.Sacrament,
		SubjectName:      subject,
		SubType:          subType,
		ScheduleDate:     stringValue(payload[s.rt.DateKey]),
		ScheduleTime:     stringValue(payload[s.rt.TimeKey]),
		ContactNumber:    firstString(payload, "contactNumber", "contact", "contactNo", "mobile"),
		Address:          stringValue(payload["address"]),
		Status:           models.StatusPending,
		PaymentStatus:    models.PaymentPending,
		Fee:              s.rt.Fees.Lookup(subType),
		SubmittedByEmail: firstString(payload, "submittedByEmail", "email"),
		Details:          types.JSONText(details),
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	s.activity.Record(ctx, models.ActivityCreate, s.rt.Name, subject, s.actorFrom(payload))
	s.invalidateCounters(ctx)
	return req, nil
}

// List returns every request of this type, newest first.
func (s *RequestService) List(ctx context.Context) ([]models.SacramentRequest, error) {
	return s.repo.ListByType(ctx, s.rt.Name)
}

// Get returns one request.
func (s *RequestService) Get(ctx context.Context, id string) (*models.SacramentRequest, error) {
	req, err := s.repo.FindByID(ctx, s.rt.Name, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, err
	}
	return req, nil
}

// Update applies a partial edit. A status change goes through the
// lifecycle engine; schedule, contact and type-specific fields are merged
// into the stored record. A concurrent edit between read and write
// surfaces as a conflict.
func (s *RequestService) Update(ctx context.Context, id string, payload map[string]interface{}) (*models.SacramentRequest, error) {
	req, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, ok := payload["status"]; ok {
		target := models.Status(stringValue(raw))
		if target != req.Status {
			reason := firstString(payload, "reason", "cancellationReason", "rejectionReason")
			if err := s.engine.Transition(req, target, reason, s.actorFrom(payload)); err != nil {
				return nil, err
			}
		}
	}

	s.mergeEditableFields(req, payload)
	if err := s.mergeDetails(req, payload); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.updateRaceError(ctx, id)
		}
		return nil, err
	}

	s.activity.Record(ctx, models.ActivityUpdate, s.rt.Name, req.SubjectName, s.actorFrom(payload))
	return req, nil
}

// UpdatePayment records a payment against the request. The status defaults
// to paid when the payload does not say otherwise.
func (s *RequestService) UpdatePayment(ctx context.Context, id string, payload map[string]interface{}) (*models.SacramentRequest, error) {
	req, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.PaymentStatus = models.PaymentPaid
	if raw := stringValue(payload["paymentStatus"]); raw != "" {
		req.PaymentStatus = models.PaymentStatus(raw)
	}
	if v := stringValue(payload["paymentDate"]); v != "" {
		req.PaymentDate = v
	}
	if v := stringValue(payload["paymentMethod"]); v != "" {
		req.PaymentMethod = v
	}
	if v := stringValue(payload["paymentReference"]); v != "" {
		req.PaymentReference = v
	}
	if v := stringValue(payload["paymentNotes"]); v != "" {
		req.PaymentNotes = v
	}

	if err := s.repo.Update(ctx, req); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.updateRaceError(ctx, id)
		}
		return nil, err
	}

	s.activity.Record(ctx, models.ActivityPaymentUpdate, s.rt.Name, req.SubjectName, s.actorFrom(payload))
	return req, nil
}

// Delete removes a request permanently.
func (s *RequestService) Delete(ctx context.Context, id string, actor string) error {
	req, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, s.rt.Name, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrNotFound
		}
		return err
	}
	if actor == "" {
		actor = lifecycle.DefaultActor
	}
	s.activity.Record(ctx, models.ActivityDelete, s.rt.Name, req.SubjectName, actor)
	s.invalidateCounters(ctx)
	return nil
}

func (s *RequestService) invalidateCounters(ctx context.Context) {
	if s.cache == nil {
		return
	}
	pattern := fmt.Sprintf("dashboard:*:%s", s.rt.Name)
	if err := s.cache.DeleteByPattern(ctx, pattern); err != nil {
		s.logger.Warn("dashboard cache invalidation failed",
			zap.String("pattern", pattern), zap.Error(err))
	}
}

// updateRaceError distinguishes a vanished row from a version mismatch.
func (s *RequestService) updateRaceError(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, s.rt.Name, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.ErrNotFound
		}
		return err
	}
	return appErrors.ErrConflict.Clone("the request was modified by someone else, reload and try again")
}

func (s *RequestService) mergeEditableFields(req *models.SacramentRequest, payload map[string]interface{}) {
	if subject := s.subjectFrom(payload); subject != "" {
		req.SubjectName = subject
	}
	if v := stringValue(payload[s.rt.DateKey]); v != "" {
		req.ScheduleDate = v
	}
	if v := stringValue(payload[s.rt.TimeKey]); v != "" {
		req.ScheduleTime = v
	}
	if v := stringValue(payload[s.rt.SubTypeKey]); v != "" && v != req.SubType {
		req.SubType = v
		req.Fee = s.rt.Fees.Lookup(v)
	}
	if v := firstString(payload, "contactNumber", "contact", "contactNo", "mobile"); v != "" {
		req.ContactNumber = v
	}
	if v := stringValue(payload["address"]); v != "" {
		req.Address = v
	}
}

// mergeDetails folds non-workflow payload keys into the stored details
// document, preserving fields the edit did not touch.
func (s *RequestService) mergeDetails(req *models.SacramentRequest, payload map[string]interface{}) error {
	details := map[string]interface{}{}
	if len(req.Details) > 0 {
		if err := json.Unmarshal(req.Details, &details); err != nil {
			details = map[string]interface{}{}
		}
	}
	for key, value := range payload {
		switch key {
		case "status", "reason", "cancellationReason", "rejectionReason", "actor", "updatedBy":
			continue
		}
		details[key] = value
	}
	encoded, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("encode %s details: %w", s.rt.Name, err)
	}
	req.Details = types.JSONText(encoded)
	return nil
}

// subjectFrom builds the display subject from the registry's subject keys.
// Multiple keys join with " & "; an array value contributes its first
// element.
func (s *RequestService) subjectFrom(payload map[string]interface{}) string {
	var parts []string
	for _, key := range s.rt.SubjectKeys {
		switch v := payload[key].(type) {
		case string:
			if v != "" {
				parts = append(parts, v)
			}
		case []interface{}:
			if len(v) > 0 {
				if first := stringValue(v[0]); first != "" {
					parts = append(parts, first)
				}
			}
		}
	}
	return strings.Join(parts, " & ")
}

func (s *RequestService) actorFrom(payload map[string]interface{}) string {
	if actor := firstString(payload, "actor", "updatedBy"); actor != "" {
		return actor
	}
	if actor := stringValue(payload[s.rt.ActorKey]); actor != "" {
		return actor
	}
	return lifecycle.DefaultActor
}

func stringValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	case float64:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	default:
		return ""
	}
}

func firstString(payload map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v := stringValue(payload[key]); v != "" {
			return v
		}
	}
	return ""
}
