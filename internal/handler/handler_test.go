package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/aurelle-app/aurelle/internal/auth"
	"github.com/aurelle-app/aurelle/internal/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := New(Deps{
		Config: &config.Config{
			CDNDomain:      "cdn.example.com",
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Tokens: auth.NewManager("test-secret"),
	})
	r := gin.New()
	h.Register(r)
	return r
}

func TestHeartbeat(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/heartbeat", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)
	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/users"},
		{http.MethodGet, "/items"},
		{http.MethodGet, "/room/getUserRooms"},
		{http.MethodGet, "/room/join/7"},
		{http.MethodPost, "/items/create"},
		{http.MethodPost, "/room/createRoom"},
	}
	for _, route := range routes {
		req := httptest.NewRequest(route.method, route.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s %s status = %d, want %d", route.method, route.path, w.Code, http.StatusUnauthorized)
		}
	}
}

func TestCreateRoomRequiresSecondaryUser(t *testing.T) {
	r := newTestRouter(t)
	tokens := auth.NewManager("test-secret")
	token, err := tokens.CreateToken(1)
	if err != nil {
		t.Fatalf("create token: %v", err)
	}

	// Both participants are part of the contract; a body naming only the
	// item must be rejected before any room is looked up.
	req := httptest.NewRequest(http.MethodPost, "/room/createRoom", strings.NewReader(`{"itemId":5}`))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestParseRoomID(t *testing.T) {
	tests := []struct {
		raw    string
		want   int64
		wantOK bool
	}{
		{"123", 123, true},
		{"123#", 123, true},
		{"123#a1b2", 123, true},
		{"#123", 0, false},
		{"abc", 0, false},
		{"-5", 0, false},
		{"", 0, false},
	}

	gin.SetMode(gin.TestMode)
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Params = gin.Params{{Key: "roomID", Value: tt.raw}}

			got, ok := parseRoomID(c)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("parseRoomID(%q) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
