package shift

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*Handler, func()) {
	teardown := setup(t)
	return NewHandler(service), teardown
}

func postShift(t *testing.T, handler *Handler, dto ShiftDTO) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(dto)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/shift", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.CreateShift(w, req.WithContext(ctx))
	return w
}

func TestHandler_CreateShift(t *testing.T) {
	t.Run("should create a shift and echo it back", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// when
		w := postShift(t, handler, ShiftDTO{Date: "2024-03-01", StartTime: "06:00", EndTime: "18:00", Station: "Hauptwache"})

		// then
		assert.Equal(t, http.StatusCreated, w.Code)
		var created ShiftDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "2024-03-01", created.Date)
		assert.Equal(t, "Hauptwache", created.Station)
		assert.Equal(t, clock.FixedNow.UnixMilli(), created.Timestamp)
	})

	t.Run("should reject a missing date", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// when
		w := postShift(t, handler, ShiftDTO{StartTime: "06:00"})

		// then
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should reject a request without user", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// given
		body, _ := json.Marshal(ShiftDTO{Date: "2024-03-01"})
		req := httptest.NewRequest(http.MethodPost, "/api/shift", bytes.NewBuffer(body))
		w := httptest.NewRecorder()

		// when
		handler.CreateShift(w, req)

		// then
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestHandler_ListShifts(t *testing.T) {
	t.Run("should return the journal as JSON", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// given
		postShift(t, handler, ShiftDTO{Date: "2024-03-01"})
		postShift(t, handler, ShiftDTO{Date: "2024-03-02"})

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/shift", nil)
		w := httptest.NewRecorder()
		handler.ListShifts(w, req.WithContext(ctx))

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		var listed []ShiftDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&listed))
		require.Len(t, listed, 2)
		assert.Equal(t, "2024-03-02", listed[0].Date)
		assert.Equal(t, "2024-03-01", listed[1].Date)
	})

	t.Run("should return an empty array, not null", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/shift", nil)
		w := httptest.NewRecorder()
		handler.ListShifts(w, req.WithContext(ctx))

		// then
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]\n", w.Body.String())
	})
}

func TestHandler_DeleteShift(t *testing.T) {
	t.Run("should delete an existing shift", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// given
		w := postShift(t, handler, ShiftDTO{Date: "2024-03-01"})
		var created ShiftDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&created))

		// when
		req := httptest.NewRequest(http.MethodDelete, "/api/shift/"+created.ID, nil).WithContext(ctx)
		req = mux.SetURLVars(req, map[string]string{"shiftId": created.ID})
		del := httptest.NewRecorder()
		handler.DeleteShift(del, req)

		// then
		assert.Equal(t, http.StatusNoContent, del.Code)
	})

	t.Run("should return 404 for an unknown shift", func(t *testing.T) {
		handler, teardown := setupHandlerTest(t)
		defer teardown()

		// when
		req := httptest.NewRequest(http.MethodDelete, "/api/shift/missing", nil).WithContext(ctx)
		req = mux.SetURLVars(req, map[string]string{"shiftId": "missing"})
		w := httptest.NewRecorder()
		handler.DeleteShift(w, req)

		// then
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
