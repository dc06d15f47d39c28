package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"brasileirao-go/internal/model"
	"brasileirao-go/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubAuth map[string]string

func (s stubAuth) Authenticate(_ context.Context, token string) (string, error) {
	if token == "t-down" {
		return "", errors.New("connection refused")
	}
	if id, ok := s[token]; ok {
		return id, nil
	}
	return "", service.ErrSessionInvalid
}

var users = map[string]*model.User{
	"fan":        {ID: "fan", UserType: model.UserTypeFan},
	"influencer": {ID: "influencer", UserType: model.UserTypeFan, IsInfluencer: true},
	"journalist": {ID: "journalist", UserType: model.UserTypeJournalist},
	"admin":      {ID: "admin", UserType: model.UserTypeAdmin},
}

func fetchUser(_ context.Context, id string) (*model.User, error) {
	if u, ok := users[id]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

func newRouter() *gin.Engine {
	r := gin.New()
	r.Use(SessionAuth(stubAuth{
		"t-fan": "fan", "t-inf": "influencer", "t-jor": "journalist", "t-adm": "admin", "t-ghost": "ghost",
	}, "brasileirao.sid"))
	ok := func(c *gin.Context) { c.String(http.StatusOK, OptionalUserID(c)) }
	r.GET("/open", ok)
	r.GET("/private", AuthRequired(), ok)
	r.GET("/publish", AuthRequired(), PublisherRequired(fetchUser), ok)
	r.GET("/admin", AuthRequired(), AdminRequired(fetchUser), ok)
	return r
}

func do(r http.Handler, path string, setup func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if setup != nil {
		setup(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
}

func TestSessionAuthSources(t *testing.T) {
	r := newRouter()

	w := do(r, "/open", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, "/open", func(req *http.Request) {
		req.AddCookie(&http.Cookie{Name: "brasileirao.sid", Value: "t-fan"})
	})
	assert.Equal(t, "fan", w.Body.String())

	w = do(r, "/open", bearer("t-jor"))
	assert.Equal(t, "journalist", w.Body.String())

	w = do(r, "/open", bearer("bogus"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(r, "/open", func(req *http.Request) { req.Header.Set("Authorization", "Basic abc") })
	assert.Empty(t, w.Body.String())
}

func TestSessionAuthStoreFailure(t *testing.T) {
	r := newRouter()

	// 会话存储故障不能被当作匿名访问
	w := do(r, "/open", bearer("t-down"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Erro ao verificar sessão")

	w = do(r, "/private", bearer("t-down"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = do(r, "/private", bearer("expired"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGates(t *testing.T) {
	r := newRouter()

	tests := []struct {
		path  string
		token string
		want  int
	}{
		{"/private", "", http.StatusUnauthorized},
		{"/private", "t-fan", http.StatusOK},
		{"/publish", "", http.StatusUnauthorized},
		{"/publish", "t-fan", http.StatusForbidden},
		{"/publish", "t-inf", http.StatusOK},
		{"/publish", "t-jor", http.StatusOK},
		{"/publish", "t-adm", http.StatusForbidden},
		{"/publish", "t-ghost", http.StatusUnauthorized},
		{"/admin", "t-inf", http.StatusForbidden},
		{"/admin", "t-jor", http.StatusForbidden},
		{"/admin", "t-adm", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.path+"/"+tt.token, func(t *testing.T) {
			var setup func(*http.Request)
			if tt.token != "" {
				setup = bearer(tt.token)
			}
			w := do(r, tt.path, setup)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := do(r, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "InternalServerError")
}

func TestCORSAllowsCredentials(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:5173"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := do(r, "/x", func(req *http.Request) { req.Header.Set("Origin", "http://localhost:5173") })
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}
