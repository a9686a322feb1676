package tictactoe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	movePrompt    = "Player %s what is your move? "
	rematchPrompt = "Play again? [y/N] "
	notAvailable  = "That move is not available."
	catsGame      = "Cat's game!"
)

type botPlayer interface {
	ChooseCell(board *entity.Board, mark entity.Mark) (int, error)
}

type recorder interface {
	Record(ctx context.Context, record *entity.GameRecord) error
}

type Option func(*Session)

// WithBot - lets the computer play mark.
func WithBot(bot botPlayer, mark entity.Mark) Option {
	return func(s *Session) {
		s.bot = bot
		s.botMark = mark
	}
}

func WithRecorder(r recorder) Option {
	return func(s *Session) {
		s.recorder = r
	}
}

func WithFirstPlayer(mark entity.Mark) Option {
	return func(s *Session) {
		s.first = mark
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// Session drives one board through console turns.
type Session struct {
	logger *slog.Logger

	board  *entity.Board
	input  *bufio.Reader
	output io.Writer

	first    entity.Mark
	bot      botPlayer
	botMark  entity.Mark
	recorder recorder
	now      func() time.Time

	moves []entity.Move

	startReader sync.Once
	lines       chan inputLine
}

type inputLine struct {
	text string
	err  error
}

func NewSession(logger *slog.Logger, board *entity.Board, in io.Reader, out io.Writer, opts ...Option) *Session {
	session := &Session{
		logger: logger.With("component", "session"),
		board:  board,
		input:  bufio.NewReader(in),
		output: out,
		first:  entity.PlayerX,
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(session)
	}

	return session
}

// Play runs turns until the board is over and announces the result.
// A non-integer reply ends the game with apperror.ErrInvalidInput.
func (that *Session) Play(ctx context.Context) (entity.Result, error) {
	if that.board.GameOver() {
		return entity.Result{}, apperror.ErrGameFinished
	}

	that.moves = that.moves[:0]
	turn := that.first

	for !that.board.GameOver() {
		if err := ctx.Err(); err != nil {
			return entity.Result{}, err
		}

		if err := that.println(that.board.String()); err != nil {
			return entity.Result{}, err
		}

		cell, err := that.nextCell(ctx, turn)
		if err != nil {
			return entity.Result{}, err
		}

		if !that.board.MakeMove(turn, cell) {
			that.logger.Debug("move rejected", "player", turn, "cell", cell,
				"reason", that.board.ValidateMove(turn, cell))

			if err = that.println(notAvailable); err != nil {
				return entity.Result{}, err
			}

			continue
		}

		that.moves = append(that.moves, entity.Move{Player: turn, Cell: cell})
		turn = turn.Opponent()
	}

	result, _ := that.board.Result()

	if err := that.announce(result); err != nil {
		return result, err
	}

	that.record(ctx, result)

	return result, nil
}

// Rematch asks whether to play again and clears the board on yes.
// End of input counts as no.
func (that *Session) Rematch(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if err := that.print(rematchPrompt); err != nil {
		return false, err
	}

	line, err := that.readLine(ctx)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		that.board.Clear()
		return true, nil
	default:
		return false, nil
	}
}

func (that *Session) nextCell(ctx context.Context, turn entity.Mark) (int, error) {
	if that.bot != nil && turn == that.botMark {
		cell, err := that.bot.ChooseCell(that.board, turn)
		if err != nil {
			return 0, fmt.Errorf("bot failed to choose cell: %w", err)
		}

		return cell, that.println(fmt.Sprintf("Player %s plays %d", turn, cell))
	}

	if err := that.print(fmt.Sprintf(movePrompt, turn)); err != nil {
		return 0, err
	}

	line, err := that.readLine(ctx)
	if err != nil {
		return 0, err
	}

	cell, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a cell number", apperror.ErrInvalidInput, line)
	}

	return cell, nil
}

func (that *Session) announce(result entity.Result) error {
	if err := that.println(that.board.String()); err != nil {
		return err
	}

	if result.Draw {
		return that.println(catsGame)
	}

	return that.println(fmt.Sprintf("Player %s wins!", result.Winner))
}

// record - a storage failure is logged, the finished game still counts.
func (that *Session) record(ctx context.Context, result entity.Result) {
	if that.recorder == nil {
		return
	}

	record := entity.NewGameRecord(that.board, result, that.moves, that.now())
	if err := that.recorder.Record(ctx, record); err != nil {
		that.logger.Error("could not record game", "id", record.ID, "error", err)
		return
	}

	that.logger.Info("game recorded", "id", record.ID, "winner", record.Winner)
}

// readLine - waits for the next trimmed line or for ctx to be done.
func (that *Session) readLine(ctx context.Context) (string, error) {
	that.startReader.Do(func() {
		that.lines = make(chan inputLine)
		go that.readLines()
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", fmt.Errorf("input closed: %w", io.ErrUnexpectedEOF)
		}

		return line.text, line.err
	}
}

// readLines feeds lines to readLine until the input ends. A pending read stays blocked
// after a cancel, the process is exiting by then.
func (that *Session) readLines() {
	defer close(that.lines)

	for {
		text, err := that.input.ReadString('\n')
		if errors.Is(err, io.EOF) {
			if text != "" {
				that.lines <- inputLine{text: strings.TrimSpace(text)}
			}

			return
		}

		if err != nil {
			that.lines <- inputLine{err: fmt.Errorf("failed to read input: %w", err)}
			return
		}

		that.lines <- inputLine{text: strings.TrimSpace(text)}
	}
}

func (that *Session) print(s string) error {
	if _, err := io.WriteString(that.output, s); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (that *Session) println(s string) error {
	return that.print(s + "\n")
}
