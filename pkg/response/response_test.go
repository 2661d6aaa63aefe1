package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_MessageDoublesAsDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	Conflict(rec, "slot already booked for this week")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "slot already booked for this week", body.Message)
	assert.Equal(t, "slot already booked for this week", body.Detail)
}

func TestDefaultMessages(t *testing.T) {
	cases := []struct {
		write  func(http.ResponseWriter, string)
		status int
		want   string
	}{
		{Unauthorized, http.StatusUnauthorized, "Unauthorized"},
		{BadRequest, http.StatusBadRequest, "Bad request"},
		{Conflict, http.StatusConflict, "Conflict"},
		{TooManyRequests, http.StatusTooManyRequests, "Too many requests"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		tc.write(rec, "")

		var body Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.status, rec.Code)
		assert.Equal(t, tc.want, body.Message)
	}
}

func TestValidationError_CarriesFieldMap(t *testing.T) {
	rec := httptest.NewRecorder()
	ValidationError(rec, map[string]string{"start_time": "start_time must be a time in HH:MM format"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error map[string]string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "start_time")
}
