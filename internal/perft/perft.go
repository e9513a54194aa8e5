package perft

import (
	"context"
	"fmt"
	"sync"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	. "github.com/cricklet/variantboard/internal/game"
	. "github.com/cricklet/variantboard/internal/helpers"
)

// Result counts the leaves of a move tree. Moves are pseudo-moves: nothing
// checks whether the mover's king is left attacked.
type Result struct {
	Nodes      int
	Captures   int
	EnPassants int
	Castles    int
}

func (r *Result) add(o Result) {
	r.Nodes += o.Nodes
	r.Captures += o.Captures
	r.EnPassants += o.EnPassants
	r.Castles += o.Castles
}

func (r Result) String() string {
	return fmt.Sprintf("nodes: %v, captures: %v, en passants: %v, castles: %v",
		humanize.Comma(int64(r.Nodes)),
		humanize.Comma(int64(r.Captures)),
		humanize.Comma(int64(r.EnPassants)),
		humanize.Comma(int64(r.Castles)))
}

func leafResult(move MoveData) Result {
	result := Result{Nodes: 1}
	if move.IsCapture() {
		result.Captures++
	}
	if move.IsEnPassant() {
		result.EnPassants++
	}
	if move.IsCastle() {
		result.Castles++
	}
	return result
}

var getMovesBuffer, releaseMovesBuffer, movesBufferStats = CreatePool(
	func() []MoveData {
		return make([]MoveData, 0, 64)
	},
	func(t *[]MoveData) {
		*t = (*t)[:0]
	},
)

func BufferPoolStats() PoolStats {
	return movesBufferStats()
}

type Runner struct {
	logger   Logger
	parallel int
	divide   bool
	progress bool
}

type RunnerOption func(*Runner)

func WithLogger(logger Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithParallel bounds how many root moves are counted at once.
func WithParallel(n int) RunnerOption {
	return func(r *Runner) {
		r.parallel = n
	}
}

// WithDivide logs the count below each root move.
func WithDivide() RunnerOption {
	return func(r *Runner) {
		r.divide = true
	}
}

func WithProgress() RunnerOption {
	return func(r *Runner) {
		r.progress = true
	}
}

func NewRunner(options ...RunnerOption) *Runner {
	r := &Runner{parallel: 1}
	for _, o := range options {
		o(r)
	}
	if r.logger == nil {
		r.logger = &DefaultLogger
	}
	if r.parallel < 1 {
		r.parallel = 1
	}
	return r
}

// Count walks every pseudo-move sequence of the given depth from b, starting
// with the side to move. b is not modified. The second result holds the
// counts below each root move, keyed by its coordinate notation.
func (r *Runner) Count(ctx context.Context, b *Board, depth int) (Result, map[string]Result, Error) {
	perMove := map[string]Result{}
	if depth <= 0 {
		return Result{Nodes: 1}, perMove, NilError
	}

	roots := b.GenerateAllMoves(b.Turn())

	progressBar := NoProgressBar
	if r.progress {
		progressBar = CreateProgressBar(len(roots), fmt.Sprint("depth ", depth))
	}
	defer progressBar.Close()

	lock := sync.Mutex{}
	total := Result{}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(r.parallel)

	for _, move := range roots {
		move := move
		group.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			child := b.Clone()
			err := child.ApplyMove(move)
			if !IsNil(err) {
				return Errorf("apply %v to\n%v: %w", move, b, err).AsError()
			}

			var result Result
			if depth == 1 {
				result = leafResult(move)
			} else {
				result, err = count(ctx, child, depth-1)
				if !IsNil(err) {
					return err.AsError()
				}
			}

			lock.Lock()
			defer lock.Unlock()

			perMove[move.String()] = result
			total.add(result)
			progressBar.Add(1)
			if r.divide {
				r.logger.Printf("%v: %v\n", move, humanize.Comma(int64(result.Nodes)))
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return total, perMove, Wrap(err)
	}

	return total, perMove, NilError
}

func count(ctx context.Context, b *Board, depth int) (Result, Error) {
	if ctx.Err() != nil {
		return Result{}, Wrap(ctx.Err())
	}

	moves := getMovesBuffer()
	defer releaseMovesBuffer(moves)

	*moves = b.AppendAllMoves(b.Turn(), *moves)

	result := Result{}
	for _, move := range *moves {
		if depth == 1 {
			result.add(leafResult(move))
			continue
		}

		child := b.Clone()
		err := child.ApplyMove(move)
		if !IsNil(err) {
			return result, Errorf("apply %v to\n%v: %w", move, b, err)
		}

		sub, err := count(ctx, child, depth-1)
		if !IsNil(err) {
			return result, err
		}
		result.add(sub)
	}

	return result, NilError
}
