// Package seed 读取并写入球队、徽章、转会等参考数据。
package seed

import (
	"context"
	"fmt"
	"os"

	"brasileirao-go/internal/model"
	"brasileirao-go/internal/repository"

	"gopkg.in/yaml.v3"
)

// Data 种子文件内容
type Data struct {
	Teams     []model.Team     `yaml:"teams"`
	Badges    []model.Badge    `yaml:"badges"`
	Transfers []model.Transfer `yaml:"transfers"`
}

// Load 读取 YAML 种子文件并做基本校验
func Load(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse 解析 YAML 内容
func Parse(raw []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	seen := make(map[string]struct{}, len(data.Teams))
	for _, t := range data.Teams {
		if t.ID == "" || t.Name == "" {
			return nil, fmt.Errorf("team entry missing id or name: %+v", t)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate team id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	for _, b := range data.Badges {
		switch b.Condition {
		case model.ConditionSignup, model.ConditionPlayerRatings, model.ConditionNewsInteractions:
		default:
			return nil, fmt.Errorf("badge %q has unknown condition %q", b.ID, b.Condition)
		}
	}
	transferIDs := make(map[string]struct{}, len(data.Transfers))
	for _, tr := range data.Transfers {
		if tr.ID == "" {
			return nil, fmt.Errorf("transfer entry missing id: %+v", tr)
		}
		if _, dup := transferIDs[tr.ID]; dup {
			return nil, fmt.Errorf("duplicate transfer id %q", tr.ID)
		}
		transferIDs[tr.ID] = struct{}{}
		if !tr.TransferType.Valid() {
			return nil, fmt.Errorf("transfer %q has unknown type %q", tr.ID, tr.TransferType)
		}
		// 同一文件列出球队时，转会必须指向其中之一
		if len(seen) > 0 {
			if _, ok := seen[tr.TeamID]; !ok {
				return nil, fmt.Errorf("transfer %q references unknown team %q", tr.ID, tr.TeamID)
			}
		}
	}
	return &data, nil
}

// Apply 按 ID upsert，可重复执行
func Apply(
	ctx context.Context,
	data *Data,
	teams *repository.TeamRepository,
	badges *repository.BadgeRepository,
	transfers *repository.TransferRepository,
) error {
	if err := teams.Upsert(ctx, data.Teams); err != nil {
		return fmt.Errorf("seed teams: %w", err)
	}
	if err := badges.Upsert(ctx, data.Badges); err != nil {
		return fmt.Errorf("seed badges: %w", err)
	}
	if err := transfers.Upsert(ctx, data.Transfers); err != nil {
		return fmt.Errorf("seed transfers: %w", err)
	}
	return nil
}
