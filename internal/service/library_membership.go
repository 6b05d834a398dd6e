package service

import (
	"context"

	"campus_api/internal/models"
	"campus_api/internal/repository"
)

type LibraryMembershipService struct {
	membershipRepo repository.LibraryMembershipRepository
}

func NewLibraryMembershipService(membershipRepo repository.LibraryMembershipRepository) *LibraryMembershipService {
	return &LibraryMembershipService{membershipRepo: membershipRepo}
}

// GetMembership 沒有會籍時回傳 nil, nil
func (s *LibraryMembershipService) GetMembership(ctx context.Context, studentID string) (*models.LibraryMembership, error) {
	return s.membershipRepo.FindByStudentID(ctx, studentID)
}

// CreateMembership 以路徑中的 studentID 建立會籍，請求中的系統欄位會被忽略
func (s *LibraryMembershipService) CreateMembership(ctx context.Context, studentID string, attrs map[string]interface{}) (*models.LibraryMembership, error) {
	membership := &models.LibraryMembership{StudentID: studentID}
	membership.MergeAttributes(attrs)

	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}
	return membership, nil
}

func (s *LibraryMembershipService) UpdateMembership(ctx context.Context, studentID string, attrs map[string]interface{}) (*models.LibraryMembership, error) {
	return s.membershipRepo.Update(ctx, studentID, attrs)
}

func (s *LibraryMembershipService) DeleteMembership(ctx context.Context, studentID string) error {
	return s.membershipRepo.Delete(ctx, studentID)
}
