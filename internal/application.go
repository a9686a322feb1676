package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository"
	"github.com/rocketscienceinc/tictactoe-console/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-console/internal/service"
	"github.com/rocketscienceinc/tictactoe-console/internal/tictactoe"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - plays games on in/out until the player declines a rematch.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	opts, err := sessionOptions(conf)
	if err != nil {
		return err
	}

	if conf.Redis.Enabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString, conf.Redis.Timeout)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		recorder := repository.NewRecorder(
			repository.NewRecordRepository(redisStorage.Connection),
			repository.NewScoreRepository(redisStorage.Connection),
		)
		opts = append(opts, tictactoe.WithRecorder(recorder))

		defer logScore(ctx, log, recorder)
	}

	session := tictactoe.NewSession(logger, entity.NewBoard(), in, out, opts...)

	for {
		result, err := session.Play(ctx)
		if err != nil {
			return fmt.Errorf("game failed: %w", err)
		}

		log.Info("game finished", "winner", result.Winner, "draw", result.Draw)

		if !conf.Rematch {
			return nil
		}

		again, err := session.Rematch(ctx)
		if err != nil {
			return fmt.Errorf("rematch failed: %w", err)
		}

		if !again {
			return nil
		}
	}
}

func sessionOptions(conf *config.Config) ([]tictactoe.Option, error) {
	first, err := entity.ParseMark(conf.FirstPlayer)
	if err != nil {
		return nil, fmt.Errorf("first player: %w", err)
	}

	opts := []tictactoe.Option{tictactoe.WithFirstPlayer(first)}

	if !conf.Bot.Enabled() {
		return opts, nil
	}

	botMark, err := entity.ParseMark(conf.Bot.Mark)
	if err != nil {
		return nil, fmt.Errorf("bot mark: %w", err)
	}

	bot, err := service.NewBotService(conf.Bot.Difficulty, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create bot: %w", err)
	}

	return append(opts, tictactoe.WithBot(bot, botMark)), nil
}

func logScore(ctx context.Context, log *slog.Logger, recorder *repository.Recorder) {
	score, err := recorder.Score(ctx)
	if err != nil {
		log.Error("could not read score", "error", err)
		return
	}

	log.Info("score", "x", score.X, "o", score.O, "draw", score.Draw)
}
