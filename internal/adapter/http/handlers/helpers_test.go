package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"budget_tracker/internal/adapter/http/middleware"
	"budget_tracker/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

var (
	testLeader   = &entities.Identity{ID: 1, Username: "admin", Role: entities.RoleLeader}
	testBudgeter = &entities.Identity{ID: 2, Username: "budgeter", Role: entities.RoleBudgeter}
	testManager  = &entities.Identity{ID: 3, Username: "manager", Role: entities.RoleProjectManager}
)

// newTestRouter returns a router whose requests run as actor (nil for anonymous).
func newTestRouter(actor *entities.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if actor != nil {
			middleware.SetIdentity(c, actor)
		}
		c.Next()
	})
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("invalid json body %q: %v", w.Body.String(), err)
	}
}
