package handler

import (
	"encoding/json"
	"html/template"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/TomSchuu/source-surf/internal/apperrors"
	mockpoller "github.com/TomSchuu/source-surf/internal/mocks/poller"
	"github.com/TomSchuu/source-surf/internal/model"
	"github.com/TomSchuu/source-surf/internal/view"
	"github.com/TomSchuu/source-surf/web"
)

func setupTestContext(t *testing.T, method, url string, body io.Reader) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	c.Request = req
	return w, c
}

func testRenderer() *view.Renderer {
	return view.NewRenderer(view.MapGallery{
		"surf_utopia": "/static/maps/surf_utopia.jpg",
	}, "surf.example.com", 27015, "Surf Heaven")
}

func TestStatusHandler_GetStatusPage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockPoller := mockpoller.NewMockPoller(ctrl)
	mockPoller.EXPECT().Snapshot().Return(model.Snapshot{
		State: model.StateOnline,
		Status: model.ServerStatus{
			Online:      true,
			Name:        "Surf Heaven",
			Map:         "surf_utopia",
			PlayerCount: 3,
			MaxPlayers:  32,
			Players:     []string{"alice"},
			Uptime:      "2h",
		},
	})

	w := httptest.NewRecorder()
	c, r := gin.CreateTestContext(w)
	r.SetHTMLTemplate(template.Must(template.ParseFS(web.Templates, "index.html.tmpl")))
	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	c.Request = req

	h := NewStatusHandler(NewLogger(zap.NewNop()), mockPoller, testRenderer())
	h.GetStatusPage()(c)

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Surf Heaven")
	assert.Contains(t, body, "3 / 32")
	assert.Contains(t, body, "status-online")
	assert.Contains(t, body, "surf_utopia")
	assert.Contains(t, body, "alice")
	assert.Contains(t, body, "2h")
}

func TestStatusHandler_GetStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockPoller := mockpoller.NewMockPoller(ctrl)
	mockPoller.EXPECT().Snapshot().Return(model.Snapshot{
		State: model.StateOnline,
		Status: model.ServerStatus{
			Online:      true,
			Name:        "Surf Heaven",
			Map:         "surf_utopia",
			PlayerCount: 3,
			MaxPlayers:  32,
			Uptime:      "2h",
		},
	})

	h := NewStatusHandler(NewLogger(zap.NewNop()), mockPoller, testRenderer())
	w, c := setupTestContext(t, http.MethodGet, "/api/status", nil)
	h.GetStatus()(c)

	require.Equal(t, http.StatusOK, w.Code)
	var m view.RenderModel
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	assert.Equal(t, "online", m.StatusText)
	assert.Equal(t, "3 / 32", m.PlayerCount)
	assert.Equal(t, "2h", m.Uptime)
	assert.Equal(t, "/static/maps/surf_utopia.jpg", m.MapImageURL)
}

func TestStatusHandler_StartServer(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name           string
		triggerErr     error
		expectedStatus int
	}{
		{
			name:           "Start accepted",
			triggerErr:     nil,
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "Start already in progress",
			triggerErr:     apperrors.ErrStartInProgress,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Server already online",
			triggerErr:     apperrors.ErrServerAlreadyOnline,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "Upstream failure",
			triggerErr:     apperrors.ErrStartRejected,
			expectedStatus: http.StatusBadGateway,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockPoller := mockpoller.NewMockPoller(ctrl)
			mockPoller.EXPECT().TriggerStart(gomock.Any()).Return(tc.triggerErr)

			h := NewStatusHandler(NewLogger(zap.NewNop()), mockPoller, testRenderer())
			w, c := setupTestContext(t, http.MethodPost, "/api/server/start", nil)
			h.StartServer()(c)

			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

func TestStatusHandler_Connect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	mockPoller := mockpoller.NewMockPoller(ctrl)
	mockPoller.EXPECT().Snapshot().Return(model.Snapshot{
		State:  model.StateOnline,
		Status: model.ServerStatus{Online: true, Map: "surf_utopia"},
	})

	h := NewStatusHandler(NewLogger(zap.NewNop()), mockPoller, testRenderer())
	w, c := setupTestContext(t, http.MethodGet, "/connect", nil)
	h.Connect()(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "steam://connect/surf.example.com:27015/surf_utopia", w.Header().Get("Location"))
}
