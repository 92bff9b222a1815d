package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjmp-dev/parish-admin-api/internal/models"
	"github.com/sjmp-dev/parish-admin-api/internal/registry"
	"github.com/sjmp-dev/parish-admin-api/internal/service"
)

type memoryRequestStore struct {
	byID map[string]*models.SacramentRequest
}

func newMemoryRequestStore() *memoryRequestStore {
	return &memoryRequestStore{byID: map[string]*models.SacramentRequest{}}
}

func (m *memoryRequestStore) Create(_ context.Context, req *models.SacramentRequest) error {
	if req.ID == "" {
		req.ID = "req-" + req.RequestNumber
	}
	req.Version = 1
	clone := *req
	m.byID[req.ID] = &clone
	return nil
}

func (m *memoryRequestStore) ListByType(_ context.Context, requestType string) ([]models.SacramentRequest, error) {
	var out []models.SacramentRequest
	for _, req := range m.byID {
		if req.RequestType == requestType {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (m *memoryRequestStore) FindByID(_ context.Context, requestType, id string) (*models.SacramentRequest, error) {
	req, ok := m.byID[id]
	if !ok || req.RequestType != requestType {
		return nil, sql.ErrNoRows
	}
	clone := *req
	return &clone, nil
}

func (m *memoryRequestStore) Update(_ context.Context, req *models.SacramentRequest) error {
	if _, ok := m.byID[req.ID]; !ok {
		return sql.ErrNoRows
	}
	req.Version++
	clone := *req
	m.byID[req.ID] = &clone
	return nil
}

func (m *memoryRequestStore) Delete(_ context.Context, requestType, id string) error {
	req, ok := m.byID[id]
	if !ok || req.RequestType != requestType {
		return sql.ErrNoRows
	}
	delete(m.byID, id)
	return nil
}

func (m *memoryRequestStore) RequestNumberExists(context.Context, string) (bool, error) {
	return false, nil
}

type noopActivity struct{}

func (noopActivity) Record(context.Context, string, string, string, string) {}

func newBaptismHandler(t *testing.T) (*RequestHandler, *memoryRequestStore) {
	t.Helper()
	rt, ok := registry.ByName("baptism")
	require.True(t, ok)
	store := newMemoryRequestStore()
	svc := service.NewRequestService(rt, store, noopActivity{}, nil)
	return NewRequestHandler(svc, nil), store
}

func performJSON(t *testing.T, method, target, body string, fn gin.HandlerFunc, params ...gin.Param) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params
	fn(c)
	return rec
}

func TestRequestHandlerCreateReturnsBarePayload(t *testing.T) {
	h, _ := newBaptismHandler(t)

	rec := performJSON(t, http.MethodPost, "/api/baptism",
		`{"name":"Juan Dela Cruz","baptismDate":"2026-06-01","baptismType":"solo","fatherName":"Pedro"}`,
		h.Create)

	require.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// Bare payload, no envelope, type-specific fields flattened in.
	assert.Equal(t, "Juan Dela Cruz", body["subjectName"])
	assert.Equal(t, "Pedro", body["fatherName"])
	assert.Equal(t, "pending", body["status"])
	assert.NotContains(t, body, "data")
}

func TestRequestHandlerCreateValidationMessage(t *testing.T) {
	h, _ := newBaptismHandler(t)

	rec := performJSON(t, http.MethodPost, "/api/baptism", `{"name":"Juan"}`, h.Create)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["message"], "baptismDate")
}

func TestRequestHandlerGetNotFound(t *testing.T) {
	h, _ := newBaptismHandler(t)

	rec := performJSON(t, http.MethodGet, "/api/baptism/missing", "", h.Get,
		gin.Param{Key: "id", Value: "missing"})

	require.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["message"])
}

func TestRequestHandlerUpdateCancelRequiresReason(t *testing.T) {
	h, store := newBaptismHandler(t)

	created := performJSON(t, http.MethodPost, "/api/baptism",
		`{"name":"Juan Dela Cruz","baptismDate":"2026-06-01"}`, h.Create)
	require.Equal(t, http.StatusCreated, created.Code)

	var id string
	for key := range store.byID {
		id = key
	}

	rec := performJSON(t, http.MethodPut, "/api/baptism/"+id,
		`{"status":"cancelled"}`, h.Update, gin.Param{Key: "id", Value: id})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = performJSON(t, http.MethodPut, "/api/baptism/"+id,
		`{"status":"cancelled","reason":"schedule conflict"}`, h.Update,
		gin.Param{Key: "id", Value: id})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "cancelled", body["status"])
	assert.Equal(t, "schedule conflict", body["cancellation_reason"])
}

func TestRequestHandlerDelete(t *testing.T) {
	h, store := newBaptismHandler(t)

	performJSON(t, http.MethodPost, "/api/baptism",
		`{"name":"Juan Dela Cruz","baptismDate":"2026-06-01"}`, h.Create)

	var id string
	for key := range store.byID {
		id = key
	}

	rec := performJSON(t, http.MethodDelete, "/api/baptism/"+id, "", h.Delete,
		gin.Param{Key: "id", Value: id})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, store.byID)
}
