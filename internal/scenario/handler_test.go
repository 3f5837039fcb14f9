package scenario

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	service, _ := newTestService(t)
	router := gin.New()
	NewHandler(service, zap.NewNop()).RegisterRoutes(router.Group("/api/v1"))
	return router, service
}

func TestEvaluateEmptyScenarioReturnsBadRequest(t *testing.T) {
	router, service := newTestRouter(t)
	sessionID, err := service.CreateSession()
	require.NoError(t, err)
	require.NoError(t, service.Save(sessionID, &Scenario{Name: "empty"}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/sessions/"+sessionID.String()+"/scenarios/empty/evaluation", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no evaluated wells")
}

func TestImportRejectsManifestWithNoValidRows(t *testing.T) {
	router, service := newTestRouter(t)
	sessionID, err := service.CreateSession()
	require.NoError(t, err)

	manifest := "name,leak_rate_lpm\n,-1\n,0\n"
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/sessions/"+sessionID.String()+"/scenarios/A/wells/import",
		strings.NewReader(manifest))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The scenario keeps its wells untouched.
	sc, err := service.Get(sessionID, "A")
	require.NoError(t, err)
	assert.Len(t, sc.Wells, 7)
}

func TestImportKeepsValidRowsAndReportsBadOnes(t *testing.T) {
	router, service := newTestRouter(t)
	sessionID, err := service.CreateSession()
	require.NoError(t, err)

	manifest := "name,leak_rate_lpm,depth_ft\nWell-A,12,1500\n,-1,100\n"
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/sessions/"+sessionID.String()+"/scenarios/A/wells/import",
		strings.NewReader(manifest))
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	sc, err := service.Get(sessionID, "A")
	require.NoError(t, err)
	require.Len(t, sc.Wells, 1)
	assert.Equal(t, "Well-A", sc.Wells[0].Name)
}
