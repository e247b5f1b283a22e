package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	AdminRepository       *AdminRepository
	ParticipantRepository *ParticipantRepository
	CourseRepository      *CourseRepository
	CredentialRepository  *CredentialRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		AdminRepository:       NewAdminRepository(db),
		ParticipantRepository: NewParticipantRepository(db),
		CourseRepository:      NewCourseRepository(db),
		CredentialRepository:  NewCredentialRepository(db),
	}
}
