package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO 基类，各表 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

func (r *Repo[T]) FindById(ctx context.Context, id int) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByWhere 条件查询单条记录
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// IsExist 判断记录是否存在
func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	var model T
	err := r.Db.WithContext(ctx).Model(&model).Where(where, args...).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateById 按主键更新指定字段，返回影响行数
func (r *Repo[T]) UpdateById(ctx context.Context, id int, data map[string]any) (int64, error) {
	var model T
	result := r.Db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(data)
	return result.RowsAffected, result.Error
}

func (r *Repo[T]) DeleteById(ctx context.Context, id int) error {
	var model T
	return r.Db.WithContext(ctx).Where("id = ?", id).Delete(&model).Error
}
