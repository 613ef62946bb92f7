package coins

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// MemoStore caches the minimum coin count per amount. A scope separates the
// entries of different denomination sets, see Scope. A count of -1 records
// an unreachable amount.
type MemoStore interface {
	Load(ctx context.Context, scope string, amount int) (count int, ok bool, err error)
	Store(ctx context.Context, scope string, amount, count int) error
	Len(ctx context.Context, scope string) (int, error)
	Clear(ctx context.Context, scope string) error
}

// Scope renders the sorted denominations, "1,5,10,25".
func Scope(denoms []int) string {
	return strings.Join(lo.Map(denoms, func(d int, _ int) string {
		return strconv.Itoa(d)
	}), ",")
}

var _ MemoStore = (*mapMemoStore)(nil)

type mapMemoStore struct {
	lock   sync.RWMutex
	scopes map[string]map[int]int
}

// NewMapMemoStore is the in-process default, safe for concurrent sweeps.
func NewMapMemoStore() MemoStore {
	return &mapMemoStore{
		scopes: make(map[string]map[int]int, 4),
	}
}

func (s *mapMemoStore) Load(_ context.Context, scope string, amount int) (int, bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	count, ok := s.scopes[scope][amount]
	return count, ok, nil
}

func (s *mapMemoStore) Store(_ context.Context, scope string, amount, count int) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	entries, ok := s.scopes[scope]
	if !ok {
		entries = make(map[int]int, 64)
		s.scopes[scope] = entries
	}
	entries[amount] = count
	return nil
}

func (s *mapMemoStore) Len(_ context.Context, scope string) (int, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return len(s.scopes[scope]), nil
}

func (s *mapMemoStore) Clear(_ context.Context, scope string) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	delete(s.scopes, scope)
	return nil
}
