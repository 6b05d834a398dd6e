package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"campus_api/internal/storage"
)

// baseRepository 提供各 repository 共用的寫入操作，錯誤都會經過 storage.TranslateError
type baseRepository struct {
	db *storage.Database
}

func (r *baseRepository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *baseRepository) create(ctx context.Context, model interface{}) error {
	return storage.TranslateError(r.conn(ctx).Omit(clause.Associations).Create(model).Error)
}

// findOne 查不到時回傳 storage.ErrNotFound
func (r *baseRepository) findOne(ctx context.Context, dest interface{}, column string, value interface{}) error {
	err := r.conn(ctx).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).First(dest).Error
	return storage.TranslateError(err)
}

// updateColumns 部分更新，只寫入 fields 中的欄位，回傳重新讀取的完整記錄
func updateColumns[T any](ctx context.Context, r *baseRepository, column string, value interface{}, fields map[string]interface{}) (*T, error) {
	var current T
	if err := r.findOne(ctx, &current, column, value); err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		err := r.conn(ctx).Model(&current).Omit(clause.Associations).Updates(fields).Error
		if err != nil {
			return nil, storage.TranslateError(err)
		}
	}

	var updated T
	if err := r.findOne(ctx, &updated, column, value); err != nil {
		return nil, err
	}
	return &updated, nil
}

// deleteWhere 沒有刪除任何記錄時回傳 storage.ErrNotFound
func (r *baseRepository) deleteWhere(ctx context.Context, model interface{}, column string, value interface{}) error {
	result := r.conn(ctx).Where(clause.Eq{Column: clause.Column{Name: column}, Value: value}).Delete(model)
	if result.Error != nil {
		return storage.TranslateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
