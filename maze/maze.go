package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/benz9527/xdsa/lib/infra"
)

const (
	Start      = 'S'
	Obstacle   = '+'
	Open       = ' '
	Tried      = 'T'
	DeadEnd    = '-'
	PartOfPath = 'O'
	// openDot is accepted as open in the input and rendered as Open.
	openDot = '.'
)

var (
	ErrEmptyMaze      = errors.New("empty maze")
	ErrNoStart        = errors.New("maze has no start")
	ErrMultipleStarts = errors.New("maze has more than one start")
)

type Point struct {
	Row, Col int
}

func (p Point) add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Maze is a rectangular rune grid. The searches mark it in place.
type Maze struct {
	grid  [][]rune
	rows  int
	cols  int
	start Point
	path  []Point
}

// Parse builds a maze from its rows. Short rows are padded with open cells.
// Any rune other than the start, the obstacle, '.' or space is kept as an
// obstacle so that the searches never walk through it.
func Parse(lines []string) (*Maze, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, infra.WrapErrorStack(ErrEmptyMaze)
	}
	m := &Maze{
		grid: make([][]rune, len(lines)),
		rows: len(lines),
	}
	for _, line := range lines {
		if n := len([]rune(line)); n > m.cols {
			m.cols = n
		}
	}
	starts := 0
	for r, line := range lines {
		row := make([]rune, m.cols)
		for c := range row {
			row[c] = Open
		}
		for c, cell := range []rune(line) {
			switch cell {
			case Start:
				starts++
				m.start = Point{Row: r, Col: c}
				row[c] = Start
			case Open, openDot:
				row[c] = Open
			default:
				row[c] = Obstacle
			}
		}
		m.grid[r] = row
	}
	switch {
	case starts == 0:
		return nil, infra.WrapErrorStack(ErrNoStart)
	case starts > 1:
		return nil, infra.WrapErrorStackWithMessage(ErrMultipleStarts, fmt.Sprintf("[maze] %d starts", starts))
	}
	return m, nil
}

// ParseString splits s on newlines and parses the rows.
func ParseString(s string) (*Maze, error) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return Parse(strings.Split(s, "\n"))
}

func (m *Maze) Rows() int    { return m.rows }
func (m *Maze) Cols() int    { return m.cols }
func (m *Maze) Start() Point { return m.start }

// At returns the current mark of p.
func (m *Maze) At(p Point) rune {
	return m.grid[p.Row][p.Col]
}

func (m *Maze) set(p Point, mark rune) {
	m.grid[p.Row][p.Col] = mark
}

// isExit reports whether p lies on the outer edge.
func (m *Maze) isExit(p Point) bool {
	return p.Row == 0 || p.Row == m.rows-1 || p.Col == 0 || p.Col == m.cols-1
}

// Path returns the part-of-path cells from the start to the exit found by
// the last successful search.
func (m *Maze) Path() []Point {
	path := make([]Point, len(m.path))
	copy(path, m.path)
	return path
}

// Reset clears every search mark and restores the start.
func (m *Maze) Reset() {
	for _, row := range m.grid {
		for c, cell := range row {
			if cell != Obstacle {
				row[c] = Open
			}
		}
	}
	m.set(m.start, Start)
	m.path = nil
}

func (m *Maze) String() string {
	var sb strings.Builder
	sb.Grow(m.rows * (m.cols + 1))
	for r, row := range m.grid {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
