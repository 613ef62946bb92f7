package maze

import (
	"slices"

	"go.uber.org/zap"

	"github.com/benz9527/xdsa/lib/stack"
	"github.com/benz9527/xdsa/xlog"
)

// directions is the visiting order: up, left, down, right.
var directions = [...]Point{
	{Row: -1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 1, Col: 0},
	{Row: 0, Col: 1},
}

type searchOptions struct {
	logger    xlog.XLogger
	visitHook func(p Point, mark rune)
}

type SearchOption func(*searchOptions)

func WithLogger(logger xlog.XLogger) SearchOption {
	return func(opts *searchOptions) {
		if logger != nil {
			opts.logger = logger
		}
	}
}

// WithVisitHook observes every mark written into the grid, an animation
// or a step counter for example.
func WithVisitHook(fn func(p Point, mark rune)) SearchOption {
	return func(opts *searchOptions) {
		opts.visitHook = fn
	}
}

type searcher struct {
	m    *Maze
	opts searchOptions
	path []Point
}

func newSearcher(m *Maze, opts []SearchOption) *searcher {
	s := &searcher{
		m: m,
		opts: searchOptions{
			logger: xlog.NewNopXLogger(),
		},
	}
	for _, o := range opts {
		o(&s.opts)
	}
	return s
}

func (s *searcher) mark(p Point, mark rune) {
	s.m.set(p, mark)
	if s.opts.visitHook != nil {
		s.opts.visitHook(p, mark)
	}
}

// enter applies the base cases in order: obstacle, already visited, exit.
// done is false when the cell was marked tried and its neighbours must be
// explored.
func (s *searcher) enter(p Point) (found, done bool) {
	switch s.m.At(p) {
	case Obstacle:
		return false, true
	case Tried, DeadEnd:
		return false, true
	}
	if s.m.isExit(p) {
		s.mark(p, PartOfPath)
		s.path = append(s.path, p)
		return true, true
	}
	s.mark(p, Tried)
	return false, false
}

func (s *searcher) finish(found bool) bool {
	// The cells were collected from the exit back to the start.
	slices.Reverse(s.path)
	s.m.path = s.path
	s.opts.logger.Debug("maze search finished",
		zap.Bool("found", found),
		zap.Int("pathLen", len(s.path)),
		zap.Stringer("start", s.m.start),
	)
	return found
}

func (s *searcher) searchFrom(p Point) bool {
	if found, done := s.enter(p); done {
		return found
	}
	for _, d := range directions {
		if s.searchFrom(p.add(d)) {
			s.mark(p, PartOfPath)
			s.path = append(s.path, p)
			return true
		}
	}
	s.mark(p, DeadEnd)
	return false
}

// Search runs the recursive depth-first search from the start. On success
// the path cells are marked part-of-path, every exhausted cell dead-end.
func Search(m *Maze, opts ...SearchOption) bool {
	s := newSearcher(m, opts)
	return s.finish(s.searchFrom(m.start))
}

type frame struct {
	p Point
	// next is the index of the next direction to explore, -1 before entering.
	next int
}

// SearchIterative visits and marks the cells in exactly the order of Search
// but keeps the frames on a heap stack, large mazes cannot overflow the
// goroutine stack.
func SearchIterative(m *Maze, opts ...SearchOption) bool {
	s := newSearcher(m, opts)
	frames := stack.NewArrayStack[frame]()
	frames.Push(frame{p: m.start, next: -1})
	found := false
	for !frames.IsEmpty() {
		f, _ := frames.Pop()
		if f.next < 0 {
			var done bool
			if found, done = s.enter(f.p); done {
				continue
			}
			f.next = 0
		} else if found {
			s.mark(f.p, PartOfPath)
			s.path = append(s.path, f.p)
			continue
		}
		if f.next == len(directions) {
			s.mark(f.p, DeadEnd)
			found = false
			continue
		}
		child := f.p.add(directions[f.next])
		f.next++
		frames.Push(f)
		frames.Push(frame{p: child, next: -1})
	}
	return s.finish(found)
}
