package repository

import (
	"context"
	"errors"

	"gorm.io/gorm/clause"

	"campus_api/internal/models"
	"campus_api/internal/storage"
)

type LibraryMembershipRepository interface {
	// FindByStudentID 沒有會籍時回傳 nil, nil
	FindByStudentID(ctx context.Context, studentID string) (*models.LibraryMembership, error)
	Create(ctx context.Context, membership *models.LibraryMembership) error
	Update(ctx context.Context, studentID string, attrs map[string]interface{}) (*models.LibraryMembership, error)
	Delete(ctx context.Context, studentID string) error
}

type libraryMembershipRepository struct {
	baseRepository
}

func NewLibraryMembershipRepository(db *storage.Database) LibraryMembershipRepository {
	return &libraryMembershipRepository{baseRepository{db: db}}
}

func (r *libraryMembershipRepository) FindByStudentID(ctx context.Context, studentID string) (*models.LibraryMembership, error) {
	var membership models.LibraryMembership
	err := r.findOne(ctx, &membership, "student_id", studentID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

func (r *libraryMembershipRepository) Create(ctx context.Context, membership *models.LibraryMembership) error {
	return r.create(ctx, membership)
}

// Update 合併 attrs 到現有會籍的屬性
func (r *libraryMembershipRepository) Update(ctx context.Context, studentID string, attrs map[string]interface{}) (*models.LibraryMembership, error) {
	var membership models.LibraryMembership
	if err := r.findOne(ctx, &membership, "student_id", studentID); err != nil {
		return nil, err
	}

	membership.MergeAttributes(attrs)
	if err := r.conn(ctx).Omit(clause.Associations).Save(&membership).Error; err != nil {
		return nil, storage.TranslateError(err)
	}
	return &membership, nil
}

func (r *libraryMembershipRepository) Delete(ctx context.Context, studentID string) error {
	return r.deleteWhere(ctx, &models.LibraryMembership{}, "student_id", studentID)
}
