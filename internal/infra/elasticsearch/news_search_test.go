package elasticsearch

import (
	"testing"
	"time"

	"brasileirao-go/internal/model"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestBuildSearchQueryFilters(t *testing.T) {
	q := buildSearchQuery("  clássico  ", "flamengo", 20, 40)

	assert.Equal(t, 40, q["from"])
	assert.Equal(t, 20, q["size"])

	boolQ := q["query"].(map[string]interface{})["bool"].(map[string]interface{})
	want := []interface{}{
		map[string]interface{}{"term": map[string]interface{}{"is_published": true}},
		map[string]interface{}{"term": map[string]interface{}{"team_id": "flamengo"}},
	}
	if diff := cmp.Diff(want, boolQ["filter"]); diff != "" {
		t.Errorf("filter mismatch (-want +got):\n%s", diff)
	}

	must := boolQ["must"].([]interface{})
	assert.Len(t, must, 1)
	mm := must[0].(map[string]interface{})["multi_match"].(map[string]interface{})
	assert.Equal(t, "clássico", mm["query"])
}

func TestBuildSearchQueryWithoutTeam(t *testing.T) {
	q := buildSearchQuery("gol", "", 10, 0)
	boolQ := q["query"].(map[string]interface{})["bool"].(map[string]interface{})
	assert.Len(t, boolQ["filter"], 1)
}

func TestToDoc(t *testing.T) {
	published := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	n := &model.News{
		ID:          "n1",
		TeamID:      "palmeiras",
		Title:       "Título",
		Content:     "Texto",
		Category:    model.CategoryAnalysis,
		ContentType: model.ContentVideo,
		LikesCount:  3,
		IsPublished: true,
		PublishedAt: published,
	}

	want := &NewsDoc{
		ID:          "n1",
		TeamID:      "palmeiras",
		Category:    "ANALYSIS",
		ContentType: "VIDEO",
		AuthorName:  "Ana",
		Title:       "Título",
		Content:     "Texto",
		LikesCount:  3,
		IsPublished: true,
		PublishedAt: "2025-05-01T12:00:00Z",
	}
	if diff := cmp.Diff(want, ToDoc(n, "Ana")); diff != "" {
		t.Errorf("ToDoc mismatch (-want +got):\n%s", diff)
	}
}
