package delete_service_time

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-MinisterSchedule/pkg/logger"
)

type fakeService map[string]bool

func (f fakeService) Delete(_ context.Context, id string) (bool, error) {
	if f[id] {
		delete(f, id)
		return true, nil
	}
	return false, nil
}

func TestHandle(t *testing.T) {
	r := mux.NewRouter()
	r.HandleFunc("/service-times/{serviceTimeId}", NewHandler(fakeService{"st-1": true}, logger.NewNop()).Handle).
		Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/service-times/st-1", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/service-times/st-1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
