package finance

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCostPresets(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewHandler().RegisterRoutes(router.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cost-presets", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Presets []costPreset `json:"presets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Presets, 3)

	require.NotNil(t, body.Presets[0].MaxDepthFt)
	assert.Equal(t, 2_000.0, *body.Presets[0].MaxDepthFt)
	assert.Equal(t, 30_000.0, body.Presets[0].Cost)
	require.NotNil(t, body.Presets[1].MaxDepthFt)
	assert.Equal(t, 5_000.0, *body.Presets[1].MaxDepthFt)
	assert.Equal(t, 55_000.0, body.Presets[1].Cost)

	// The top bracket is open-ended.
	assert.Nil(t, body.Presets[2].MaxDepthFt)
	assert.Equal(t, 80_000.0, body.Presets[2].Cost)
}
