package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository          *UserRepository
	UniversityRepository    *UniversityRepository
	TokenRepository         *TokenRepository
	ClubRepository          *ClubRepository
	ClubMemberRepository    *ClubMemberRepository
	EventRepository         *EventRepository
	EventAttendeeRepository *EventAttendeeRepository
	ClubRequestRepository   *ClubRequestRepository
	AnnouncementRepository  *AnnouncementRepository
	RecruitmentRepository   *RecruitmentRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:          NewUserRepository(db),
		UniversityRepository:    NewUniversityRepository(db),
		TokenRepository:         NewTokenRepository(db),
		ClubRepository:          NewClubRepository(db),
		ClubMemberRepository:    NewClubMemberRepository(db),
		EventRepository:         NewEventRepository(db),
		EventAttendeeRepository: NewEventAttendeeRepository(db),
		ClubRequestRepository:   NewClubRequestRepository(db),
		AnnouncementRepository:  NewAnnouncementRepository(db),
		RecruitmentRepository:   NewRecruitmentRepository(db),
	}
}
