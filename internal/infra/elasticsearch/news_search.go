package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// buildSearchQuery 构造新闻检索 DSL，只返回 id
func buildSearchQuery(q, teamID string, limit, offset int) map[string]interface{} {
	filter := []interface{}{
		map[string]interface{}{"term": map[string]interface{}{"is_published": true}},
	}
	if teamID != "" {
		filter = append(filter, map[string]interface{}{"term": map[string]interface{}{"team_id": teamID}})
	}

	must := []interface{}{}
	if q = strings.TrimSpace(q); q != "" {
		must = append(must, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     q,
				"fields":    []string{"title^3", "title.folded^2", "content", "content.folded", "author_name"},
				"type":      "best_fields",
				"operator":  "or",
				"fuzziness": "AUTO",
			},
		})
	}

	return map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"filter": filter,
				"must":   must,
			},
		},
		"_source": []string{"id"},
		"from":    offset,
		"size":    limit,
		"sort": []interface{}{
			map[string]interface{}{"_score": map[string]string{"order": "desc"}},
			map[string]interface{}{"published_at": map[string]string{"order": "desc"}},
		},
	}
}

// SearchNewsIDs 按相关度返回匹配的新闻 ID
func (n *NewsIndex) SearchNewsIDs(ctx context.Context, q, teamID string, limit, offset int) ([]string, error) {
	body, err := json.Marshal(buildSearchQuery(q, teamID, limit, offset))
	if err != nil {
		return nil, err
	}

	resp, err := n.es.Search(
		n.es.Search.WithContext(ctx),
		n.es.Search.WithIndex(n.index),
		n.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("ES search error: %s", resp.String())
	}

	var esResp struct {
		Hits struct {
			Hits []struct {
				Source struct {
					ID string `json:"id"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&esResp); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(esResp.Hits.Hits))
	for _, h := range esResp.Hits.Hits {
		ids = append(ids, h.Source.ID)
	}
	return ids, nil
}
