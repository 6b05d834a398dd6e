package repository

import (
	"context"

	"campus_api/internal/models"
	"campus_api/internal/storage"
)

type ProfessorRepository interface {
	FindAll(ctx context.Context) ([]models.Professor, error)
	Create(ctx context.Context, professor *models.Professor) error
	Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Professor, error)
	Delete(ctx context.Context, id string) error
}

type professorRepository struct {
	baseRepository
}

func NewProfessorRepository(db *storage.Database) ProfessorRepository {
	return &professorRepository{baseRepository{db: db}}
}

func (r *professorRepository) FindAll(ctx context.Context) ([]models.Professor, error) {
	professors := []models.Professor{}
	err := r.conn(ctx).Find(&professors).Error
	return professors, storage.TranslateError(err)
}

func (r *professorRepository) Create(ctx context.Context, professor *models.Professor) error {
	return r.create(ctx, professor)
}

func (r *professorRepository) Update(ctx context.Context, id string, fields map[string]interface{}) (*models.Professor, error) {
	return updateColumns[models.Professor](ctx, &r.baseRepository, "id", id, fields)
}

func (r *professorRepository) Delete(ctx context.Context, id string) error {
	return r.deleteWhere(ctx, &models.Professor{}, "id", id)
}
