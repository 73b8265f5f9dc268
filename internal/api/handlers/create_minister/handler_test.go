package create_minister

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MinisterSchedule/internal/service/ministers"
	"github.com/m04kA/SMC-MinisterSchedule/internal/service/ministers/models"
	"github.com/m04kA/SMC-MinisterSchedule/pkg/logger"
)

type fakeService struct {
	linked map[string]bool
}

func (f fakeService) Create(_ context.Context, req *models.CreateMinisterRequest) (*models.MinisterResponse, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ministers.ErrInvalidInput)
	}
	if req.UserID != nil && f.linked[*req.UserID] {
		return nil, ministers.ErrDuplicateUserID
	}
	return &models.MinisterResponse{ID: "m-1", Name: req.Name, Email: req.Email, UserID: req.UserID}, nil
}

func TestHandle(t *testing.T) {
	h := NewHandler(fakeService{linked: map[string]bool{"u-anna": true}}, logger.NewNop())

	tests := []struct {
		name string
		body string
		want int
	}{
		{"created", `{"name":"Marco","email":"marco@example.org","userId":"u-marco"}`, http.StatusCreated},
		{"blank name", `{"name":"  "}`, http.StatusBadRequest},
		{"user already linked", `{"name":"Anna Bis","userId":"u-anna"}`, http.StatusConflict},
		{"unknown field", `{"name":"Marco","role":"admin"}`, http.StatusBadRequest},
		{"empty body", ``, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/ministers", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHandle_ReturnsCreatedMinister(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(fakeService{}, logger.NewNop()).Handle(rec,
		httptest.NewRequest(http.MethodPost, "/ministers", strings.NewReader(`{"name":"Marco","userId":"u-marco"}`)))

	require.Equal(t, http.StatusCreated, rec.Code)
	var body models.MinisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Marco", body.Name)
	require.NotNil(t, body.UserID)
	assert.Equal(t, "u-marco", *body.UserID)
}
