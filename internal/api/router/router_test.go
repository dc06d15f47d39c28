package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brasileirao-go/internal/api/handler"
	"brasileirao-go/internal/api/middleware"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"
	"brasileirao-go/internal/service"
	"brasileirao-go/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const cookieName = "brasileirao.sid"

type apiEnv struct {
	db     *gorm.DB
	engine *gin.Engine
}

func newAPI(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)

	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	matchRepo := repository.NewMatchRepository(db)
	journalistRepo := repository.NewJournalistRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	badgeRepo := repository.NewBadgeRepository(db)
	influencerRepo := repository.NewInfluencerRepository(db)
	sessionRepo := repository.NewSessionRepository(db)

	badgeService := service.NewBadgeService(badgeRepo, ratingRepo, interactionRepo)
	authService := service.NewAuthService(userRepo, sessionRepo, teamRepo, badgeService, service.SessionSettings{
		Secret: "router-test", Issuer: "brasileirao", TTL: 30 * 24 * time.Hour,
	})

	fetch := func(ctx context.Context, id string) (*model.User, error) { return userRepo.GetByID(ctx, id) }

	r := gin.New()
	r.Use(middleware.Recovery())
	Setup(r, Handlers{
		Auth:       handler.NewAuthHandler(authService, handler.CookieSettings{Name: cookieName}),
		Team:       handler.NewTeamHandler(service.NewTeamService(teamRepo, matchRepo, ratingRepo, repository.NewTransferRepository(db))),
		News:       handler.NewNewsHandler(service.NewNewsService(newsRepo, teamRepo, journalistRepo, userRepo, interactionRepo, badgeService)),
		Rating:     handler.NewRatingHandler(service.NewRatingService(ratingRepo, matchRepo, badgeService)),
		User:       handler.NewUserHandler(service.NewProfileService(userRepo), badgeService),
		Influencer: handler.NewInfluencerHandler(service.NewInfluencerService(influencerRepo, userRepo)),
	},
		middleware.SessionAuth(authService, cookieName),
		middleware.PublisherRequired(fetch),
		middleware.AdminRequired(fetch),
	)
	return &apiEnv{db: db, engine: r}
}

func (e *apiEnv) call(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	}
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)
	return w
}

// register 注册并返回会话令牌与用户 ID
func (e *apiEnv) register(t *testing.T, name string, extra map[string]interface{}) (string, string) {
	t.Helper()
	body := map[string]interface{}{"name": name, "email": name + "@example.com", "password": "segredo123"}
	for k, v := range extra {
		body[k] = v
	}
	w := e.call(t, http.MethodPost, "/api/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
			User  struct {
				ID string `json:"id"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.Token, resp.Data.User.ID
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (int, string) {
	t.Helper()
	var resp struct {
		Error struct {
			Code int    `json:"code"`
			Type string `json:"type"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Error.Code, resp.Error.Type
}

func TestSessionCookieLifecycle(t *testing.T) {
	api := newAPI(t)

	w := api.call(t, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name": "Maria", "email": "maria@example.com", "password": "segredo123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == cookieName {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, session.SameSite)
	assert.Equal(t, 30*24*60*60, session.MaxAge)

	w = api.call(t, http.MethodGet, "/api/auth/me", session.Value, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "maria@example.com")
	assert.NotContains(t, w.Body.String(), "password")

	w = api.call(t, http.MethodPost, "/api/auth/logout", session.Value, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.call(t, http.MethodGet, "/api/auth/me", session.Value, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	code, typ := decodeError(t, w)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Unauthorized", typ)
}

func TestNewsAuthorization(t *testing.T) {
	api := newAPI(t)
	testutil.Team(t, api.db, "flamengo")
	testutil.Team(t, api.db, "vasco")
	fanToken, _ := api.register(t, "fan", map[string]interface{}{"teamId": "flamengo"})
	infToken, infID := api.register(t, "influencer", map[string]interface{}{"teamId": "flamengo"})
	require.NoError(t, api.db.Model(&model.User{}).Where("id = ?", infID).Update("is_influencer", true).Error)

	post := map[string]interface{}{"teamId": "flamengo", "category": "NEWS", "title": "Título", "content": "Texto"}

	w := api.call(t, http.MethodPost, "/api/news", "", post)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.call(t, http.MethodPost, "/api/news", fanToken, post)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.call(t, http.MethodPost, "/api/news", infToken, map[string]interface{}{
		"teamId": "vasco", "category": "NEWS", "title": "Título", "content": "Texto",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.call(t, http.MethodPost, "/api/news", infToken, post)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = api.call(t, http.MethodPost, "/api/news", infToken, map[string]interface{}{
		"teamId": "flamengo", "category": "GOSSIP", "title": "Título", "content": "Texto",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.call(t, http.MethodGet, "/api/news/my-news", infToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = api.call(t, http.MethodGet, "/api/news/my-news", fanToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.call(t, http.MethodGet, "/api/admin/users", infToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestFeedAndInteractionEndpoints(t *testing.T) {
	api := newAPI(t)
	testutil.Team(t, api.db, "flamengo")
	_, j := testutil.Journalist(t, api.db, "ana")
	n := testutil.News(t, api.db, "flamengo", model.JournalistAuthor{JournalistID: j.ID}, time.Now())
	token, _ := api.register(t, "fan", map[string]interface{}{"teamId": "flamengo"})

	w := api.call(t, http.MethodGet, "/api/news?filter=my-team", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.call(t, http.MethodGet, "/api/news?filter=my-team", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), n.ID)

	w = api.call(t, http.MethodGet, "/api/news?filter=bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	path := "/api/news/" + n.ID + "/interaction"
	w = api.call(t, http.MethodPost, path, "", map[string]string{"type": "LIKE"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.call(t, http.MethodPost, path, token, map[string]string{"type": "LIKE"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = api.call(t, http.MethodPost, path, token, map[string]string{"type": "LIKE"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"removed":true`)

	w = api.call(t, http.MethodPost, path, token, map[string]string{"type": "LOVE"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.call(t, http.MethodPost, "/api/news/missing/interaction", token, map[string]string{"type": "LIKE"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInfluencerReviewEndpoints(t *testing.T) {
	api := newAPI(t)
	fanToken, fanID := api.register(t, "fan", nil)
	adminToken, adminID := api.register(t, "admin", nil)
	require.NoError(t, api.db.Model(&model.User{}).Where("id = ?", adminID).Update("user_type", model.UserTypeAdmin).Error)

	w := api.call(t, http.MethodPost, "/api/influencer/request", fanToken, map[string]string{"reason": "Canal no YouTube"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Data model.InfluencerRequest `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = api.call(t, http.MethodPost, "/api/influencer/request", fanToken, map[string]string{"reason": "De novo"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.call(t, http.MethodGet, "/api/admin/influencer-requests?status=PENDING", fanToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.call(t, http.MethodGet, "/api/admin/influencer-requests?status=PENDING", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), created.Data.ID)

	review := "/api/admin/influencer-requests/" + created.Data.ID + "/review"
	w = api.call(t, http.MethodPut, review, adminToken, map[string]string{"status": "APPROVED"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.call(t, http.MethodPut, review, adminToken, map[string]string{"status": "REJECTED"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.call(t, http.MethodPut, "/api/admin/influencer-requests/missing/review", adminToken, map[string]string{"status": "APPROVED"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var fan model.User
	require.NoError(t, api.db.First(&fan, "id = ?", fanID).Error)
	assert.True(t, fan.IsInfluencer)

	w = api.call(t, http.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestTeamEndpoints(t *testing.T) {
	api := newAPI(t)
	testutil.Team(t, api.db, "flamengo")

	w := api.call(t, http.MethodGet, "/api/teams", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.call(t, http.MethodGet, "/api/teams/flamengo", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.call(t, http.MethodGet, "/api/teams/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.call(t, http.MethodGet, "/api/teams/flamengo/last-match", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.call(t, http.MethodGet, "/api/matches/flamengo/recent?limit=5", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = api.call(t, http.MethodGet, "/api/teams/flamengo/transfers?limit=5", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)

	w = api.call(t, http.MethodGet, "/api/teams/flamengo/transfers?limit=500", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.call(t, http.MethodGet, "/api/standings", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
