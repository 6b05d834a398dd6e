package repository

import "campus_api/internal/storage"

type Repositories struct {
	Student           StudentRepository
	Professor         ProfessorRepository
	LibraryMembership LibraryMembershipRepository
}

func NewRepositories(db *storage.Database) *Repositories {
	return &Repositories{
		Student:           NewStudentRepository(db),
		Professor:         NewProfessorRepository(db),
		LibraryMembership: NewLibraryMembershipRepository(db),
	}
}
