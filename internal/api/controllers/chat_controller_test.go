package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wadi/internal/api/controllers"
	"wadi/internal/services"
	"wadi/pkg/utils"
)

type mockChatService struct {
	chat func(ctx context.Context, message string) (string, error)
}

func (m *mockChatService) Chat(ctx context.Context, message string) (string, error) {
	return m.chat(ctx, message)
}

var _ services.ChatServiceInterface = (*mockChatService)(nil)

func newChatRouter(svc services.ChatServiceInterface) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/chat", controllers.NewChatController(svc).Chat)
	return r
}

func TestChat_200(t *testing.T) {
	svc := &mockChatService{
		chat: func(_ context.Context, message string) (string, error) {
			assert.Equal(t, "any hotels in Kharga?", message)
			return "Ya Habibi, try the Kharga Oasis Hotel!", nil
		},
	}
	r := newChatRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "any hotels in Kharga?"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Response string `json:"response"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ya Habibi, try the Kharga Oasis Hotel!", resp.Data.Response)
}

func TestChat_MissingMessage_400(t *testing.T) {
	svc := &mockChatService{
		chat: func(_ context.Context, _ string) (string, error) {
			t.Fatal("service must not be called without a message")
			return "", nil
		},
	}
	r := newChatRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_UpstreamFailure_502(t *testing.T) {
	svc := &mockChatService{
		chat: func(_ context.Context, _ string) (string, error) {
			return "", utils.ErrUpstreamUnavailable
		},
	}
	r := newChatRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"message": "hi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
