package showcase

import (
	"aistudio-academy/internal/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// RedisRepository stores the collection as one JSON blob, so a Save is a single
// atomic SET.
type RedisRepository struct {
	client *redis.Client
	key    string
}

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client, key: CollectionKey}
}

func (r *RedisRepository) Load(ctx context.Context) ([]models.Project, bool, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load collection: %w", err)
	}

	var projects []models.Project
	if err := json.Unmarshal(raw, &projects); err != nil {
		return nil, false, fmt.Errorf("decode collection: %w", err)
	}
	return projects, true, nil
}

func (r *RedisRepository) Save(ctx context.Context, projects []models.Project) error {
	if projects == nil {
		projects = []models.Project{}
	}
	raw, err := json.Marshal(projects)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := r.client.Set(ctx, r.key, raw, 0).Err(); err != nil {
		return fmt.Errorf("save collection: %w", err)
	}
	return nil
}
