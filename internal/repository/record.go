package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	recentKey = "games:recent"

	// MaxRecent bounds the recent games list.
	MaxRecent = 100
)

var ErrRecordNotFound = errors.New("game record not found")

type RecordRepository interface {
	Save(ctx context.Context, record *entity.GameRecord) error
	GetByID(ctx context.Context, id string) (*entity.GameRecord, error)
	ListRecent(ctx context.Context, limit int) ([]*entity.GameRecord, error)
}

type dbRecord struct {
	client *redis.Client
}

func NewRecordRepository(client *redis.Client) RecordRepository {
	return &dbRecord{
		client: client,
	}
}

func recordKey(id string) string {
	return "game:" + id
}

func (that *dbRecord) Save(ctx context.Context, record *entity.GameRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal game record: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, recordKey(record.ID), recordJSON, 0)
		pipe.LPush(ctx, recentKey, record.ID)
		pipe.LTrim(ctx, recentKey, 0, MaxRecent-1)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save game record: %w", err)
	}

	return nil
}

func (that *dbRecord) GetByID(ctx context.Context, id string) (*entity.GameRecord, error) {
	response, err := that.client.Get(ctx, recordKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrRecordNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game record by ID: %w", err)
	}

	var record entity.GameRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game record: %w", err)
	}

	return &record, nil
}

// ListRecent - returns up to limit records, newest first. Ids whose record expired are skipped.
func (that *dbRecord) ListRecent(ctx context.Context, limit int) ([]*entity.GameRecord, error) {
	if limit <= 0 {
		return nil, nil
	}

	ids, err := that.client.LRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list recent games: %w", err)
	}

	records := make([]*entity.GameRecord, 0, len(ids))
	for _, id := range ids {
		record, err := that.GetByID(ctx, id)
		if errors.Is(err, ErrRecordNotFound) {
			continue
		}

		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}
