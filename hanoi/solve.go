package hanoi

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/xlog"
)

// MaxDisks bounds Solve, the move list has 2^n - 1 entries.
const MaxDisks = 24

type Move struct {
	Disk int
	From string
	To   string
}

func (m Move) String() string {
	return fmt.Sprintf("disk %d: %s -> %s", m.Disk, m.From, m.To)
}

type solveOptions struct {
	logger   xlog.XLogger
	moveHook func(m Move, t *Tower)
}

type SolveOption func(*solveOptions)

func WithLogger(logger xlog.XLogger) SolveOption {
	return func(opts *solveOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithMoveHook is called after every applied move with the tower state.
func WithMoveHook(fn func(m Move, t *Tower)) SolveOption {
	return func(opts *solveOptions) {
		opts.moveHook = fn
	}
}

type solver struct {
	tower *Tower
	opts  solveOptions
	moves []Move
}

func (s *solver) move(from, to string) error {
	disk, err := s.tower.Top(from)
	if err != nil {
		return err
	}
	if err = s.tower.Move(from, to); err != nil {
		return err
	}
	m := Move{Disk: disk, From: from, To: to}
	s.moves = append(s.moves, m)
	s.opts.logger.Debug("hanoi move", zap.Int("disk", disk), zap.String("from", from), zap.String("to", to))
	if s.opts.moveHook != nil {
		s.opts.moveHook(m, s.tower)
	}
	return nil
}

// moveTower shifts height disks from from to to, parking the upper ones on via.
func (s *solver) moveTower(height int, from, to, via string) error {
	if height < 1 {
		return nil
	}
	if err := s.moveTower(height-1, from, via, to); err != nil {
		return err
	}
	if err := s.move(from, to); err != nil {
		return err
	}
	return s.moveTower(height-1, via, to, from)
}

// Solve moves n disks from one peg to another through a Tower, so every
// step passes the legality check.
func Solve(n int, from, to, via string, opts ...SolveOption) ([]Move, error) {
	if n > MaxDisks {
		return nil, infra.WrapErrorStackWithMessage(ErrInvalidDisk, fmt.Sprintf("[hanoi] %d disks exceed %d", n, MaxDisks))
	}
	tower, err := NewTower(n, from, to, via)
	if err != nil {
		return nil, err
	}
	s := &solver{
		tower: tower,
		opts: solveOptions{
			logger: xlog.NewNopXLogger(),
		},
		moves: make([]Move, 0, (1<<n)-1),
	}
	for _, o := range opts {
		if o != nil {
			o(&s.opts)
		}
	}
	if err = s.moveTower(n, from, to, via); err != nil {
		return nil, err
	}
	s.opts.logger.Info("hanoi solved", zap.Int("disks", n), zap.Int("moves", len(s.moves)))
	return s.moves, nil
}
