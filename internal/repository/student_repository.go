package repository

import (
	"context"

	"campus_api/internal/models"
	"campus_api/internal/storage"
)

type StudentRepository interface {
	FindAll(ctx context.Context) ([]models.Student, error)
	FindAllWithProctor(ctx context.Context) ([]models.Student, error)
	FindByProctorID(ctx context.Context, professorID string) ([]models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Student, error)
	Delete(ctx context.Context, id string) error
}

type studentRepository struct {
	baseRepository
}

func NewStudentRepository(db *storage.Database) StudentRepository {
	return &studentRepository{baseRepository{db: db}}
}

func (r *studentRepository) FindAll(ctx context.Context) ([]models.Student, error) {
	students := []models.Student{}
	err := r.conn(ctx).Find(&students).Error
	return students, storage.TranslateError(err)
}

// FindAllWithProctor 查詢所有學生並預先載入指導教授
func (r *studentRepository) FindAllWithProctor(ctx context.Context) ([]models.Student, error) {
	students := []models.Student{}
	err := r.conn(ctx).Preload("Proctor").Find(&students).Error
	return students, storage.TranslateError(err)
}

func (r *studentRepository) FindByProctorID(ctx context.Context, professorID string) ([]models.Student, error) {
	students := []models.Student{}
	err := r.conn(ctx).Where("proctor_id = ?", professorID).Find(&students).Error
	return students, storage.TranslateError(err)
}

func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	return r.create(ctx, student)
}

func (r *studentRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Student, error) {
	return updateColumns[models.Student](ctx, &r.baseRepository, "id", id, fields)
}

func (r *studentRepository) Delete(ctx context.Context, id string) error {
	return r.deleteWhere(ctx, &models.Student{}, "id", id)
}
