package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	scoreKey  = "score"
	drawField = "draw"
)

// Score counts finished games by outcome.
type Score struct {
	X    int64 `json:"x"`
	O    int64 `json:"o"`
	Draw int64 `json:"draw"`
}

type ScoreRepository interface {
	Increment(ctx context.Context, winner entity.Mark) error
	Get(ctx context.Context) (Score, error)
}

type dbScore struct {
	client *redis.Client
}

func NewScoreRepository(client *redis.Client) ScoreRepository {
	return &dbScore{
		client: client,
	}
}

// Increment - adds one game to the winner's count; entity.Empty counts as a draw.
func (that *dbScore) Increment(ctx context.Context, winner entity.Mark) error {
	field := drawField
	if winner.IsPlayer() {
		field = winner.String()
	}

	if err := that.client.HIncrBy(ctx, scoreKey, field, 1).Err(); err != nil {
		return fmt.Errorf("failed to increment score: %w", err)
	}

	return nil
}

func (that *dbScore) Get(ctx context.Context) (Score, error) {
	values, err := that.client.HGetAll(ctx, scoreKey).Result()
	if err != nil {
		return Score{}, fmt.Errorf("failed to get score: %w", err)
	}

	var score Score
	for field, target := range map[string]*int64{
		entity.PlayerX.String(): &score.X,
		entity.PlayerO.String(): &score.O,
		drawField:               &score.Draw,
	} {
		raw, ok := values[field]
		if !ok {
			continue
		}

		if *target, err = strconv.ParseInt(raw, 10, 64); err != nil {
			return Score{}, fmt.Errorf("failed to parse %s score: %w", field, err)
		}
	}

	return score, nil
}
