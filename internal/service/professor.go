package service

import (
	"context"
	"encoding/json"

	"campus_api/internal/models"
	"campus_api/internal/repository"
)

// Seniority 職級，JSON 中可以是數字或字串，統一存成字串。
// 0、空字串和 null 都當作未提供
type Seniority string

func (s *Seniority) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*s = ""
		return nil
	}
	v, err := seniorityText(raw)
	if err != nil {
		return invalidField("seniority")
	}
	*s = Seniority(v)
	return nil
}

// CreateProfessorInput 建立教授的請求，所有欄位都必須提供
type CreateProfessorInput struct {
	ID           string    `json:"id" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Seniority    Seniority `json:"seniority" binding:"required"`
	AadharNumber string    `json:"aadharNumber" binding:"required"`
}

var professorPatchFields = map[string]patchField{
	"name":         {column: "name", convert: toText},
	"seniority":    {column: "seniority", convert: toSeniority},
	"aadharNumber": {column: "aadhar_number", convert: toText},
}

type ProfessorService struct {
	professorRepo repository.ProfessorRepository
}

func NewProfessorService(professorRepo repository.ProfessorRepository) *ProfessorService {
	return &ProfessorService{professorRepo: professorRepo}
}

func (s *ProfessorService) ListProfessors(ctx context.Context) ([]models.Professor, error) {
	return s.professorRepo.FindAll(ctx)
}

func (s *ProfessorService) CreateProfessor(ctx context.Context, input CreateProfessorInput) (*models.Professor, error) {
	if input.ID == "" || input.Name == "" || input.Seniority == "" || input.AadharNumber == "" {
		return nil, ErrMissingFields
	}

	professor := &models.Professor{
		ID:           input.ID,
		Name:         input.Name,
		Seniority:    string(input.Seniority),
		AadharNumber: input.AadharNumber,
	}
	if err := s.professorRepo.Create(ctx, professor); err != nil {
		return nil, err
	}
	return professor, nil
}

func (s *ProfessorService) UpdateProfessor(ctx context.Context, id string, patch map[string]interface{}) (*models.Professor, error) {
	updates, err := buildUpdates(professorPatchFields, patch)
	if err != nil {
		return nil, err
	}
	return s.professorRepo.Update(ctx, id, updates)
}

// DeleteProfessor 刪除教授，名下學生的 proctorId 由資料庫設為 null
func (s *ProfessorService) DeleteProfessor(ctx context.Context, id string) error {
	return s.professorRepo.Delete(ctx, id)
}
