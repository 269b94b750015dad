package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mockhandler "github.com/TomSchuu/source-surf/internal/mocks/api/handler"
	mockws "github.com/TomSchuu/source-surf/internal/mocks/api/ws"
	mockmiddleware "github.com/TomSchuu/source-surf/internal/mocks/middleware"
)

func TestSetUpRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockHandler := mockhandler.NewMockStatusHandler(ctrl)
	mockHub := mockws.NewMockHub(ctrl)
	mockRequestID := mockmiddleware.NewMockRequestID(ctrl)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	emptySuccessHandler := func(c *gin.Context) {
		c.Status(http.StatusOK)
	}
	nextMiddleware := func(c *gin.Context) {
		c.Next()
	}

	mockRequestID.EXPECT().Tag().Return(nextMiddleware).AnyTimes()
	mockHandler.EXPECT().GetStatusPage().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().GetStatus().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().StartServer().Return(emptySuccessHandler).AnyTimes()
	mockHandler.EXPECT().Connect().Return(emptySuccessHandler).AnyTimes()
	mockHub.EXPECT().Handle().Return(emptySuccessHandler).AnyTimes()

	SetUpRoutes(r, mockHandler, mockHub, mockRequestID)

	testCases := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "Status Page Route",
			method:         http.MethodGet,
			path:           "/",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Status API Route",
			method:         http.MethodGet,
			path:           "/api/status",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Status Websocket Route",
			method:         http.MethodGet,
			path:           "/api/status/ws",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Start Server Route",
			method:         http.MethodPost,
			path:           "/api/server/start",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Connect Route",
			method:         http.MethodGet,
			path:           "/connect",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Unknown Route",
			method:         http.MethodGet,
			path:           "/nope",
			expectedStatus: http.StatusNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(tc.method, tc.path, nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}
