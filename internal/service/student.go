package service

import (
	"context"

	"campus_api/internal/models"
	"campus_api/internal/repository"
)

// CreateStudentInput 建立學生的請求，所有欄位都必須提供
type CreateStudentInput struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name" binding:"required"`
	DateOfBirth  string `json:"dateOfBirth" binding:"required"`
	AadharNumber string `json:"aadharNumber" binding:"required"`
}

var studentPatchFields = map[string]patchField{
	"name":         {column: "name", convert: toText},
	"dateOfBirth":  {column: "date_of_birth", convert: toDate},
	"aadharNumber": {column: "aadhar_number", convert: toText},
	"proctorId":    {column: "proctor_id", convert: toOptionalText},
}

type StudentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

func (s *StudentService) ListStudents(ctx context.Context) ([]models.Student, error) {
	return s.studentRepo.FindAll(ctx)
}

// ListEnrichedStudents 列出所有學生，附帶各自的指導教授
func (s *StudentService) ListEnrichedStudents(ctx context.Context) ([]models.EnrichedStudent, error) {
	students, err := s.studentRepo.FindAllWithProctor(ctx)
	if err != nil {
		return nil, err
	}

	enriched := make([]models.EnrichedStudent, 0, len(students))
	for _, student := range students {
		enriched = append(enriched, student.Enrich())
	}
	return enriched, nil
}

func (s *StudentService) CreateStudent(ctx context.Context, input CreateStudentInput) (*models.Student, error) {
	if input.ID == "" || input.Name == "" || input.DateOfBirth == "" || input.AadharNumber == "" {
		return nil, ErrMissingFields
	}

	dob, err := parseDate(input.DateOfBirth)
	if err != nil {
		return nil, invalidField("dateOfBirth")
	}

	student := &models.Student{
		ID:           input.ID,
		Name:         input.Name,
		DateOfBirth:  dob,
		AadharNumber: input.AadharNumber,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// UpdateStudent 部分更新，未提供的欄位保持不變
func (s *StudentService) UpdateStudent(ctx context.Context, id string, patch map[string]interface{}) (*models.Student, error) {
	updates, err := buildUpdates(studentPatchFields, patch)
	if err != nil {
		return nil, err
	}
	return s.studentRepo.Update(ctx, id, updates)
}

func (s *StudentService) DeleteStudent(ctx context.Context, id string) error {
	return s.studentRepo.Delete(ctx, id)
}

// ListProctorships 列出指導教授為 professorID 的學生
func (s *StudentService) ListProctorships(ctx context.Context, professorID string) ([]models.Student, error) {
	return s.studentRepo.FindByProctorID(ctx, professorID)
}

// AssignProctor 把學生的指導教授設為 professorID，原本的指派會被取代
func (s *StudentService) AssignProctor(ctx context.Context, professorID, studentID string) (*models.Student, error) {
	if studentID == "" {
		return nil, ErrMissingFields
	}
	return s.studentRepo.Update(ctx, studentID, map[string]interface{}{"proctor_id": professorID})
}
