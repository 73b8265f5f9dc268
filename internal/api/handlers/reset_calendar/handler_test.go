package reset_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/internal/api/middleware"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/servicetimes"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/servicetimes/models"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/logger"
)

type fakeService struct {
	calls int
	err   error
}

func (f *fakeService) Reset(context.Context) (*models.ResetResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &models.ResetResponse{DeletedSlots: 12, DeletedServiceTimes: 3}, nil
}

func serve(svc *fakeService, role string) *httptest.ResponseRecorder {
	h := middleware.Auth(middleware.RequireAdmin(http.HandlerFunc(NewHandler(svc, logger.NewNop()).Handle)))

	req := httptest.NewRequest(http.MethodPost, "/admin/reset", nil)
	req.Header.Set(middleware.HeaderUserID, "u-1")
	req.Header.Set(middleware.HeaderUserRole, role)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandle_AdminResetsCalendar(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "admin")

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.ResetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(12), body.DeletedSlots)
	assert.Equal(t, int64(3), body.DeletedServiceTimes)
}

func TestHandle_MinisterIsForbidden(t *testing.T) {
	svc := &fakeService{}
	rec := serve(svc, "minister")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Zero(t, svc.calls)
}

func TestHandle_StorageFailure(t *testing.T) {
	rec := serve(&fakeService{err: servicetimes.ErrInternal}, "admin")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
