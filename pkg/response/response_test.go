package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	JSON(rec, http.StatusAccepted, map[string]string{"status": "ok"})

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSuccessWithMeta(t *testing.T) {
	rec := httptest.NewRecorder()

	SuccessWithMeta(rec, http.StatusOK, "Doctors retrieved successfully", []int{1, 2}, &Meta{Page: 2, Limit: 25, Total: 27, TotalPages: 2})

	assert.JSONEq(t, `{
		"success": true,
		"message": "Doctors retrieved successfully",
		"data": [1, 2],
		"meta": {"page": 2, "limit": 25, "total": 27, "total_pages": 2}
	}`, rec.Body.String())
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name   string
		write  func(w http.ResponseWriter)
		status int
		body   string
	}{
		{
			name:   "error with detail",
			write:  func(w http.ResponseWriter) { Error(w, http.StatusConflict, "Conflict", "duplicate") },
			status: http.StatusConflict,
			body:   `{"success":false,"message":"Conflict","error":"duplicate"}`,
		},
		{
			name:   "validation",
			write:  func(w http.ResponseWriter) { ValidationError(w, map[string]string{"field": "field is required"}) },
			status: http.StatusBadRequest,
			body:   `{"success":false,"message":"Validation failed","error":{"field":"field is required"}}`,
		},
		{
			name:   "bad request default message",
			write:  func(w http.ResponseWriter) { BadRequest(w, "") },
			status: http.StatusBadRequest,
			body:   `{"success":false,"message":"Bad request"}`,
		},
		{
			name:   "not found default message",
			write:  func(w http.ResponseWriter) { NotFound(w, "") },
			status: http.StatusNotFound,
			body:   `{"success":false,"message":"Resource not found"}`,
		},
		{
			name:   "internal error custom message",
			write:  func(w http.ResponseWriter) { InternalServerError(w, "Failed to update filters") },
			status: http.StatusInternalServerError,
			body:   `{"success":false,"message":"Failed to update filters"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}
