package service

import (
	"campus_api/internal/repository"
)

type Services struct {
	Student           *StudentService
	Professor         *ProfessorService
	LibraryMembership *LibraryMembershipService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Student:           NewStudentService(repos.Student),
		Professor:         NewProfessorService(repos.Professor),
		LibraryMembership: NewLibraryMembershipService(repos.LibraryMembership),
	}
}
