package coins

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/benz9527/xdsa/lib/infra"
)

var _ MemoStore = (*redisMemoStore)(nil)

// redisMemoStore keeps one hash per scope, the fields are the amounts.
type redisMemoStore struct {
	client    redis.UniversalClient
	keyPrefix string
}

func NewRedisMemoStore(client redis.UniversalClient, keyPrefix string) MemoStore {
	if keyPrefix == "" {
		keyPrefix = "xdsa:coins:memo"
	}
	return &redisMemoStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (s *redisMemoStore) key(scope string) string {
	return s.keyPrefix + ":{" + scope + "}"
}

func (s *redisMemoStore) Load(ctx context.Context, scope string, amount int) (int, bool, error) {
	raw, err := s.client.HGet(ctx, s.key(scope), strconv.Itoa(amount)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[redis-memo] load %d", amount))
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[redis-memo] corrupted entry %d", amount))
	}
	return count, true, nil
}

func (s *redisMemoStore) Store(ctx context.Context, scope string, amount, count int) error {
	if err := s.client.HSet(ctx, s.key(scope), strconv.Itoa(amount), count).Err(); err != nil {
		return infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[redis-memo] store %d", amount))
	}
	return nil
}

func (s *redisMemoStore) Len(ctx context.Context, scope string) (int, error) {
	n, err := s.client.HLen(ctx, s.key(scope)).Result()
	if err != nil {
		return 0, infra.WrapErrorStackWithMessage(err, "[redis-memo] len")
	}
	return int(n), nil
}

func (s *redisMemoStore) Clear(ctx context.Context, scope string) error {
	if err := s.client.Del(ctx, s.key(scope)).Err(); err != nil {
		return infra.WrapErrorStackWithMessage(err, "[redis-memo] clear")
	}
	return nil
}
