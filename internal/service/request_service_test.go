package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjmp-dev/parish-admin-api/internal/models"
	"github.com/sjmp-dev/parish-admin-api/internal/registry"
	appErrors "github.com/sjmp-dev/parish-admin-api/pkg/errors"
)

type fakeRequestStore struct {
	byID          map[string]*models.SacramentRequest
	failUpdate    bool
	updatedCalled int
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{byID: map[string]*models.SacramentRequest{}}
}

func (f *fakeRequestStore) Create(_ context.Context, req *models.SacramentRequest) error {
	if req.ID == "" {
		req.ID = "req-" + req.RequestNumber
	}
	req.Version = 1
	clone := *req
	f.byID[req.ID] = &clone
	return nil
}

func (f *fakeRequestStore) ListByType(_ context.Context, requestType string) ([]models.SacramentRequest, error) {
	var out []models.SacramentRequest
	for _, req := range f.byID {
		if req.RequestType == requestType {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeRequestStore) FindByID(_ context.Context, requestType, id string) (*models.SacramentRequest, error) {
	req, ok := f.byID[id]
	if !ok || req.RequestType != requestType {
		return nil, sql.ErrNoRows
	}
	clone := *req
	return &clone, nil
}

func (f *fakeRequestStore) Update(_ context.Context, req *models.SacramentRequest) error {
	f.updatedCalled++
	if f.failUpdate {
		return sql.ErrNoRows
	}
	if _, ok := f.byID[req.ID]; !ok {
		return sql.ErrNoRows
	}
	req.Version++
	clone := *req
	f.byID[req.ID] = &clone
	return nil
}

func (f *fakeRequestStore) Delete(_ context.Context, requestType, id string) error {
	req, ok := f.byID[id]
	if !ok || req.RequestType != requestType {
		return sql.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeRequestStore) RequestNumberExists(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type recordedActivity struct {
	action, entityType, subject, actor string
}

type fakeActivity struct {
	entries []recordedActivity
}

func (f *fakeActivity) Record(_ context.Context, action, entityType, subject, actor string) {
	f.entries = append(f.entries, recordedActivity{action, entityType, subject, actor})
}

func mustType(t *testing.T, name string) registry.RequestType {
	t.Helper()
	rt, ok := registry.ByName(name)
	require.True(t, ok)
	return rt
}

func TestRequestServiceCreateBaptism(t *testing.T) {
	store := newFakeRequestStore()
	activity := &fakeActivity{}
	svc := NewRequestService(mustType(t, "baptism"), store, activity, nil)

	req, err := svc.Create(context.Background(), map[string]interface{}{
		"name":        "Juan Dela Cruz",
		"baptismDate": "2026-06-01",
		"baptismTime": "09:00",
		"baptismType": "common",
		"contact":     "09171234567",
		"fatherName":  "Pedro Dela Cruz",
	})
	require.NoError(t, err)

	assert.Equal(t, "baptism", req.RequestType)
	assert.Regexp(t, regexp.MustCompile(`^BAPT-\d+-[a-z0-9]+$`), req.RequestNumber)
	assert.Equal(t, "Juan Dela Cruz", req.SubjectName)
	assert.Equal(t, 300.0, req.Fee)
	assert.Equal(t, models.StatusPending, req.Status)
	assert.Equal(t, models.PaymentPending, req.PaymentStatus)
	assert.Equal(t, "09171234567", req.ContactNumber)

	var details map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Details, &details))
	assert.Equal(t, "Pedro Dela Cruz", details["fatherName"])

	require.Len(t, activity.entries, 1)
	assert.Equal(t, models.ActivityCreate, activity.entries[0].action)
	assert.Equal(t, "09171234567", activity.entries[0].actor)
}

func TestRequestServiceCreateMissingRequiredField(t *testing.T) {
	svc := NewRequestService(mustType(t, "baptism"), newFakeRequestStore(), &fakeActivity{}, nil)

	_, err := svc.Create(context.Background(), map[string]interface{}{"name": "Juan"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "baptismDate")
}

func TestRequestServiceCreateMarriageJoinsCouple(t *testing.T) {
	svc := NewRequestService(mustType(t, "marriage"), newFakeRequestStore(), &fakeActivity{}, nil)

	req, err := svc.Create(context.Background(), map[string]interface{}{
		"groomName":        "Jose Rizal",
		"brideName":        "Maria Clara",
		"dateOfWedding":    "2026-12-08",
		"submittedByEmail": "jose@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jose Rizal & Maria Clara", req.SubjectName)
	assert.Equal(t, 5000.0, req.Fee)
	assert.Equal(t, "jose@example.com", req.SubmittedByEmail)
}

func TestRequestServiceCreatePamisaUsesFirstName(t *testing.T) {
	svc := NewRequestService(mustType(t, "pamisa"), newFakeRequestStore(), &fakeActivity{}, nil)

	req, err := svc.Create(context.Background(), map[string]interface{}{
		"names":     []interface{}{"Lolo Ambo", "Lola Sela"},
		"intention": "eternal repose",
		"date":      "2026-07-01",
		"time":      "06:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Lolo Ambo", req.SubjectName)
}

func TestRequestServiceCreateCertificateAssignsSerial(t *testing.T) {
	svc := NewRequestService(mustType(t, "certificates"), newFakeRequestStore(), &fakeActivity{}, nil)

	req, err := svc.Create(context.Background(), map[string]interface{}{
		"certificateType":  "Baptismal Certificate",
		"fullName":         "Juan Dela Cruz",
		"purpose":          "school enrollment",
		"contactNumber":    "09171234567",
		"address":          "Bgy. San Jose",
		"requestDate":      "2026-05-02",
		"submittedByEmail": "juan@example.com",
	})
	require.NoError(t, err)

	var details map[string]interface{}
	require.NoError(t, json.Unmarshal(req.Details, &details))
	serial, _ := details["certificateNumber"].(string)
	assert.Regexp(t, regexp.MustCompile(`^BAP-\d{4}-\d{4}$`), serial)
}

func TestRequestServiceUpdateStatusTransition(t *testing.T) {
	store := newFakeRequestStore()
	activity := &fakeActivity{}
	svc := NewRequestService(mustType(t, "funeral"), store, activity, nil)

	created, err := svc.Create(context.Background(), map[string]interface{}{
		"nameOfDeceased": "Andres Bonifacio",
		"scheduleDate":   "2026-06-15",
		"scheduleTime":   "14:00",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, map[string]interface{}{
		"status": "cancelled",
		"reason": "family moved the wake",
		"actor":  "secretary",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, updated.Status)
	assert.Equal(t, "family moved the wake", updated.CancellationReason)
	assert.Equal(t, "secretary", updated.CancelledBy)
}

func TestRequestServiceUpdateCancelWithoutReason(t *testing.T) {
	store := newFakeRequestStore()
	svc := NewRequestService(mustType(t, "funeral"), store, &fakeActivity{}, nil)

	created, err := svc.Create(context.Background(), map[string]interface{}{
		"nameOfDeceased": "Andres Bonifacio",
		"scheduleDate":   "2026-06-15",
		"scheduleTime":   "14:00",
	})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, map[string]interface{}{"status": "cancelled"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestRequestServiceUpdateConflict(t *testing.T) {
	store := newFakeRequestStore()
	svc := NewRequestService(mustType(t, "baptism"), store, &fakeActivity{}, nil)

	created, err := svc.Create(context.Background(), map[string]interface{}{
		"name":        "Juan Dela Cruz",
		"baptismDate": "2026-06-01",
	})
	require.NoError(t, err)

	store.failUpdate = true
	_, err = svc.Update(context.Background(), created.ID, map[string]interface{}{"status": "approved"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestRequestServiceUpdateUnknownID(t *testing.T) {
	svc := NewRequestService(mustType(t, "baptism"), newFakeRequestStore(), &fakeActivity{}, nil)

	_, err := svc.Update(context.Background(), "missing", map[string]interface{}{"status": "approved"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestRequestServiceUpdatePaymentDefaultsToPaid(t *testing.T) {
	store := newFakeRequestStore()
	activity := &fakeActivity{}
	svc := NewRequestService(mustType(t, "baptism"), store, activity, nil)

	created, err := svc.Create(context.Background(), map[string]interface{}{
		"name":        "Juan Dela Cruz",
		"baptismDate": "2026-06-01",
	})
	require.NoError(t, err)

	paid, err := svc.UpdatePayment(context.Background(), created.ID, map[string]interface{}{
		"paymentMethod": "cash",
		"paymentDate":   "2026-06-02",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentPaid, paid.PaymentStatus)
	assert.Equal(t, "cash", paid.PaymentMethod)

	last := activity.entries[len(activity.entries)-1]
	assert.Equal(t, models.ActivityPaymentUpdate, last.action)
}

func TestRequestServiceDelete(t *testing.T) {
	store := newFakeRequestStore()
	activity := &fakeActivity{}
	svc := NewRequestService(mustType(t, "volunteer"), store, activity, nil)

	created, err := svc.Create(context.Background(), map[string]interface{}{
		"ministry":      "Choir",
		"fullName":      "Maria Santos",
		"email":         "maria@example.com",
		"contactNumber": "09171234567",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID, "admin"))
	_, err = svc.Get(context.Background(), created.ID)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)

	last := activity.entries[len(activity.entries)-1]
	assert.Equal(t, models.ActivityDelete, last.action)
	assert.Equal(t, "Maria Santos", last.subject)
}

type fakeInvalidator struct {
	patterns []string
}

func (f *fakeInvalidator) DeleteByPattern(_ context.Context, pattern string) error {
	f.patterns = append(f.patterns, pattern)
	return nil
}

func TestRequestServicePurgesDashboardCounters(t *testing.T) {
	cache := &fakeInvalidator{}
	svc := NewRequestService(mustType(t, "baptism"), newFakeRequestStore(), &fakeActivity{}, nil).WithCache(cache)

	created, err := svc.Create(context.Background(), map[string]interface{}{
		"name":        "Juan Dela Cruz",
		"baptismDate": "2026-06-01",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), created.ID, "admin"))

	assert.Equal(t, []string{"dashboard:*:baptism", "dashboard:*:baptism"}, cache.patterns)
}
