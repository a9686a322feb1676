package repository

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Recorder stores a finished game and counts its outcome.
type Recorder struct {
	records RecordRepository
	scores  ScoreRepository
}

func NewRecorder(records RecordRepository, scores ScoreRepository) *Recorder {
	return &Recorder{
		records: records,
		scores:  scores,
	}
}

func (that *Recorder) Record(ctx context.Context, record *entity.GameRecord) error {
	if err := that.records.Save(ctx, record); err != nil {
		return fmt.Errorf("failed save record: %w", err)
	}

	if err := that.scores.Increment(ctx, record.Winner); err != nil {
		return fmt.Errorf("failed update score: %w", err)
	}

	return nil
}

func (that *Recorder) Score(ctx context.Context) (Score, error) {
	return that.scores.Get(ctx)
}
