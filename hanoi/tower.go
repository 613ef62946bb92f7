package hanoi

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/benz9527/xdsa/lib/infra"
	"github.com/benz9527/xdsa/lib/stack"
)

var (
	ErrIllegalMove = errors.New("larger disk onto a smaller one")
	ErrEmptyPeg    = errors.New("peg has no disk")
	ErrUnknownPeg  = errors.New("unknown peg")
	ErrInvalidPegs = errors.New("pegs must be three distinct names")
	ErrInvalidDisk = errors.New("disk count out of range")
)

var defaultPegNames = [3]string{"A", "B", "C"}

// Tower holds three pegs, disk 1 is the smallest. All disks start on the
// first named peg.
type Tower struct {
	names []string
	pegs  map[string]stack.Stack[int]
	disks int
	moves int
}

// NewTower stacks n disks on the first peg. names defaults to A, B, C.
func NewTower(n int, names ...string) (*Tower, error) {
	if n < 0 {
		return nil, infra.WrapErrorStackWithMessage(ErrInvalidDisk, fmt.Sprintf("[hanoi] %d disks", n))
	}
	if len(names) == 0 {
		names = defaultPegNames[:]
	}
	if len(names) != 3 || names[0] == names[1] || names[1] == names[2] || names[0] == names[2] {
		return nil, infra.WrapErrorStackWithMessage(ErrInvalidPegs, fmt.Sprintf("[hanoi] pegs %v", names))
	}
	t := &Tower{
		names: slices.Clone(names),
		pegs:  make(map[string]stack.Stack[int], 3),
		disks: n,
	}
	for _, name := range names {
		t.pegs[name] = stack.NewArrayStack[int](n)
	}
	for disk := n; disk >= 1; disk-- {
		t.pegs[names[0]].Push(disk)
	}
	return t, nil
}

func (t *Tower) peg(name string) (stack.Stack[int], error) {
	p, ok := t.pegs[name]
	if !ok {
		return nil, infra.WrapErrorStackWithMessage(ErrUnknownPeg, fmt.Sprintf("[hanoi] peg %q", name))
	}
	return p, nil
}

// Move takes the top disk of from and puts it on to. The tower is left
// untouched when the move is rejected.
func (t *Tower) Move(from, to string) error {
	src, err := t.peg(from)
	if err != nil {
		return err
	}
	dst, err := t.peg(to)
	if err != nil {
		return err
	}
	disk, err := src.Peek()
	if err != nil {
		return infra.WrapErrorStackWithMessage(ErrEmptyPeg, fmt.Sprintf("[hanoi] move from %q", from))
	}
	if from == to {
		return nil
	}
	if top, err := dst.Peek(); err == nil && top < disk {
		return infra.WrapErrorStackWithMessage(ErrIllegalMove,
			fmt.Sprintf("[hanoi] disk %d from %q onto disk %d on %q", disk, from, top, to))
	}
	_, _ = src.Pop()
	dst.Push(disk)
	t.moves++
	return nil
}

// Top returns the smallest disk on the peg.
func (t *Tower) Top(name string) (int, error) {
	p, err := t.peg(name)
	if err != nil {
		return 0, err
	}
	disk, err := p.Peek()
	if err != nil {
		return 0, infra.WrapErrorStackWithMessage(ErrEmptyPeg, fmt.Sprintf("[hanoi] top of %q", name))
	}
	return disk, nil
}

// Disks lists the disks of a peg from bottom to top.
func (t *Tower) Disks(name string) ([]int, error) {
	p, err := t.peg(name)
	if err != nil {
		return nil, err
	}
	disks := p.Values()
	slices.Reverse(disks)
	return disks, nil
}

func (t *Tower) Names() []string {
	return slices.Clone(t.names)
}

func (t *Tower) DiskCount() int {
	return t.disks
}

func (t *Tower) Moves() int {
	return t.moves
}

// IsSolved reports whether every disk sits on the named peg.
func (t *Tower) IsSolved(name string) bool {
	p, ok := t.pegs[name]
	return ok && p.Size() == t.disks
}

// String renders one line per peg, bottom disk first.
func (t *Tower) String() string {
	var b strings.Builder
	for i, name := range t.names {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(name)
		b.WriteByte(':')
		disks, _ := t.Disks(name)
		for _, d := range disks {
			b.WriteByte(' ')
			b.WriteString(strconv.Itoa(d))
		}
	}
	return b.String()
}
