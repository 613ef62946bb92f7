package coins

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/benz9527/xdsa/lib/infra"
)

// memoEntry is one row of the SQL memo table.
type memoEntry struct {
	Namespace string `gorm:"primaryKey;size:64"`
	Scope     string `gorm:"primaryKey;size:255"`
	Amount    int    `gorm:"primaryKey;autoIncrement:false"`
	Count     int    `gorm:"not null"`
}

func (memoEntry) TableName() string {
	return "xdsa_coin_memo"
}

var _ MemoStore = (*gormMemoStore)(nil)

type gormMemoStore struct {
	db        *gorm.DB
	namespace string
}

// NewGormMemoStore migrates the memo table. The namespace separates
// independent users of one database.
func NewGormMemoStore(db *gorm.DB, namespace string) (MemoStore, error) {
	if db == nil {
		return nil, infra.NewErrorStack("[gorm-memo] nil db")
	}
	if err := db.AutoMigrate(&memoEntry{}); err != nil {
		return nil, infra.WrapErrorStackWithMessage(err, "[gorm-memo] migrate")
	}
	if namespace == "" {
		namespace = "default"
	}
	return &gormMemoStore{db: db, namespace: namespace}, nil
}

func (s *gormMemoStore) scoped(ctx context.Context, scope string) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&memoEntry{}).
		Where("namespace = ? AND scope = ?", s.namespace, scope)
}

func (s *gormMemoStore) Load(ctx context.Context, scope string, amount int) (int, bool, error) {
	var entry memoEntry
	err := s.scoped(ctx, scope).Where("amount = ?", amount).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	} else if err != nil {
		return 0, false, infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[gorm-memo] load %d", amount))
	}
	return entry.Count, true, nil
}

func (s *gormMemoStore) Store(ctx context.Context, scope string, amount, count int) error {
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "scope"}, {Name: "amount"}},
		DoUpdates: clause.AssignmentColumns([]string{"count"}),
	}).Create(&memoEntry{
		Namespace: s.namespace,
		Scope:     scope,
		Amount:    amount,
		Count:     count,
	}).Error
	if err != nil {
		return infra.WrapErrorStackWithMessage(err, fmt.Sprintf("[gorm-memo] store %d", amount))
	}
	return nil
}

func (s *gormMemoStore) Len(ctx context.Context, scope string) (int, error) {
	var n int64
	if err := s.scoped(ctx, scope).Count(&n).Error; err != nil {
		return 0, infra.WrapErrorStackWithMessage(err, "[gorm-memo] len")
	}
	return int(n), nil
}

func (s *gormMemoStore) Clear(ctx context.Context, scope string) error {
	err := s.db.WithContext(ctx).
		Where("namespace = ? AND scope = ?", s.namespace, scope).
		Delete(&memoEntry{}).Error
	if err != nil {
		return infra.WrapErrorStackWithMessage(err, "[gorm-memo] clear")
	}
	return nil
}
