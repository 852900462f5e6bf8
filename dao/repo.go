package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类，各实体 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r Repo[T]) Create(ctx context.Context, m *T) error {
	return r.Db.WithContext(ctx).Create(m).Error
}

func (r Repo[T]) FindByID(ctx context.Context, id any) (*T, error) {
	var m T
	err := r.Db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, query string, args ...any) (*T, error) {
	var m T
	err := r.Db.WithContext(ctx).Where(query, args...).First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r Repo[T]) DeleteByID(ctx context.Context, id any) error {
	var m T
	return r.Db.WithContext(ctx).Where("id = ?", id).Delete(&m).Error
}
