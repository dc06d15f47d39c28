package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	infraKafka "brasileirao-go/internal/infra/kafka"
	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"
	"brasileirao-go/internal/testutil"

	"gorm.io/gorm"
)

// testEnv 一个测试数据库上装配好的全部服务
type testEnv struct {
	db         *gorm.DB
	badges     *BadgeService
	auth       *AuthService
	news       *NewsService
	teams      *TeamService
	ratings    *RatingService
	profile    *ProfileService
	influencer *InfluencerService
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	return newEnvOn(t, testutil.NewDB(t))
}

func newEnvOn(t *testing.T, db *gorm.DB) *testEnv {
	t.Helper()

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

	badges := NewBadgeService(badgeRepo, ratingRepo, interactionRepo)
	return &testEnv{
		db:     db,
		badges: badges,
		auth: NewAuthService(userRepo, sessionRepo, teamRepo, badges, SessionSettings{
			Secret: "test-secret",
			Issuer: "brasileirao-test",
			TTL:    time.Hour,
		}),
		news:       NewNewsService(newsRepo, teamRepo, journalistRepo, userRepo, interactionRepo, badges),
		teams:      NewTeamService(teamRepo, matchRepo, ratingRepo, repository.NewTransferRepository(db)),
		ratings:    NewRatingService(ratingRepo, matchRepo, badges),
		profile:    NewProfileService(userRepo),
		influencer: NewInfluencerService(influencerRepo, userRepo),
	}
}

// failingEvaluator 始终失败的徽章评估
type failingEvaluator struct {
	calls int
}

func (f *failingEvaluator) Evaluate(context.Context, string) ([]model.UserBadge, error) {
	f.calls++
	return nil, errors.New("badge store unavailable")
}

// recordingPublisher 记录发出的新闻事件
type recordingPublisher struct {
	mu     sync.Mutex
	events []infraKafka.NewsEvent
	err    error
}

func (p *recordingPublisher) PublishNewsEvent(_ context.Context, event infraKafka.NewsEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// memoryCache 进程内 Cache 实现
type memoryCache struct {
	mu    sync.Mutex
	data  map[string]interface{}
	hits  int
	trips int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string]interface{}{}}
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.trips++
	v, ok := c.data[key]
	if !ok {
		return false
	}
	teams, ok := v.([]model.Team)
	if !ok {
		return false
	}
	*(dest.(*[]model.Team)) = teams
	c.hits++
	return true
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	return nil
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
