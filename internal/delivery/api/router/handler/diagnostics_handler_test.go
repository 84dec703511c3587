package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	deliverycontext "autohub/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsHandler_Ping(t *testing.T) {
	h := NewDiagnosticsHandler()
	h.now = func() time.Time { return time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC) }

	c, rec := newRequest(newTestEcho(), http.MethodGet, "/test/public", "", nil)
	deliverycontext.SetRequestID(c, "req-7")

	require.NoError(t, h.Ping(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"requestId":"req-7"`)
	assert.Contains(t, rec.Body.String(), `"serverTime":"2025-03-01T08:00:00Z"`)
}

func TestDiagnosticsHandler_WhoAmI(t *testing.T) {
	h := NewDiagnosticsHandler()

	t.Run("without session", func(t *testing.T) {
		c, rec := newRequest(newTestEcho(), http.MethodGet, "/test/auth", "", nil)

		require.NoError(t, h.WhoAmI(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("reports session", func(t *testing.T) {
		session := customerSession()
		c, rec := newRequest(newTestEcho(), http.MethodGet, "/test/auth", "", session)

		require.NoError(t, h.WhoAmI(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data struct {
				Degraded bool `json:"degraded"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Data.Degraded)
		assert.Contains(t, rec.Body.String(), session.PrincipalID.String())
	})
}
