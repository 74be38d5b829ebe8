package rest_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/phygrid/engine/internal/api/middleware"
	"github.com/phygrid/engine/internal/api/rest"
	"github.com/phygrid/engine/internal/logger"
	"github.com/phygrid/engine/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type testRoutesMocks struct {
	ctrl    *gomock.Controller
	handler *mocks.MockAPIHandler
	router  *gin.Engine
}

func setupTestRoutes(t *testing.T) *testRoutesMocks {
	ctrl := gomock.NewController(t)
	tm := &testRoutesMocks{
		ctrl:    ctrl,
		handler: mocks.NewMockAPIHandler(ctrl),
		router:  gin.New(),
	}
	rest.SetupRoutes(tm.router, tm.handler, middleware.AuthConfig{
		APIKeys: []string{"test-key"},
	})
	return tm
}

func tearDownTestRoutes(tm *testRoutesMocks) {
	tm.ctrl.Finish()
}

func respond(status int) func(c *gin.Context) {
	return func(c *gin.Context) {
		c.Status(status)
	}
}

func TestRoutes_HealthNeedsNoAuth(t *testing.T) {
	tm := setupTestRoutes(t)
	defer tearDownTestRoutes(tm)

	tm.handler.EXPECT().HealthCheck(gomock.Any()).Do(respond(http.StatusOK))

	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_PublicReads(t *testing.T) {
	tm := setupTestRoutes(t)
	defer tearDownTestRoutes(tm)

	tm.handler.EXPECT().GetAsset(gomock.Any()).Do(respond(http.StatusOK))
	tm.handler.EXPECT().GetOwnershipHistory(gomock.Any()).Do(respond(http.StatusOK))

	w := httptest.NewRecorder()
	tm.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assets/1f1f1f1f-0000-0000-0000-000000000001", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	tm.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/records/building/1f1f1f1f-0000-0000-0000-000000000001/history", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_MutationsRequireAuth(t *testing.T) {
	tm := setupTestRoutes(t)
	defer tearDownTestRoutes(tm)

	// No handler expectations: the middleware must reject before dispatch
	paths := []struct {
		method string
		path   string
	}{
		{method: http.MethodPost, path: "/api/v1/checkins"},
		{method: http.MethodPost, path: "/api/v1/transfers"},
		{method: http.MethodPost, path: "/api/v1/transfers/claim"},
		{method: http.MethodPost, path: "/api/v1/bids"},
		{method: http.MethodPatch, path: "/api/v1/assets/1f1f1f1f-0000-0000-0000-000000000001"},
	}
	for _, p := range paths {
		w := httptest.NewRecorder()
		tm.router.ServeHTTP(w, httptest.NewRequest(p.method, p.path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, p.path)
	}
}

func TestRoutes_AuthedMutationDispatches(t *testing.T) {
	tm := setupTestRoutes(t)
	defer tearDownTestRoutes(tm)

	tm.handler.EXPECT().CheckIn(gomock.Any()).Do(respond(http.StatusCreated))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkins", nil)
	req.Header.Set("Authorization", "ApiKey test-key")
	tm.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRoutes_SettleIsOperatorOnly(t *testing.T) {
	tm := setupTestRoutes(t)
	defer tearDownTestRoutes(tm)

	// Bearer credentials are rejected even before JWT validation could
	// succeed; the settle route accepts API keys only.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bids/1f1f1f1f-0000-0000-0000-000000000001/settle", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	tm.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tm.handler.EXPECT().SettleBid(gomock.Any()).Do(respond(http.StatusAccepted))
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/bids/1f1f1f1f-0000-0000-0000-000000000001/settle", nil)
	req.Header.Set("Authorization", "ApiKey test-key")
	tm.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusAccepted, w.Code)
}
