package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"eduforms/internal/model"
)

// FormCache keeps a form's question list hot so the runner's initial
// load doesn't hit MongoDB on every page view
type FormCache interface {
	SetQuestions(ctx context.Context, formID string, questions []model.Question) error
	GetQuestions(ctx context.Context, formID string) ([]model.Question, error)
	Invalidate(ctx context.Context, formID string) error
}

type formCache struct {
	client *redis.Client
}

func NewFormCache(client *redis.Client) FormCache {
	return &formCache{
		client: client,
	}
}

func (c *formCache) SetQuestions(ctx context.Context, formID string, questions []model.Question) error {
	data, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, "form:questions:"+formID, data, 5*time.Minute).Err()
}

func (c *formCache) GetQuestions(ctx context.Context, formID string) ([]model.Question, error) {
	data, err := c.client.Get(ctx, "form:questions:"+formID).Result()
	if err != nil {
		return nil, err
	}
	var questions []model.Question
	err = json.Unmarshal([]byte(data), &questions)
	return questions, err
}

func (c *formCache) Invalidate(ctx context.Context, formID string) error {
	return c.client.Del(ctx, "form:questions:"+formID).Err()
}
