package services

import (
	"context"

	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/repositories"
)

// UniversityService defines the interface for university lookups
type UniversityService interface {
	GetAllUniversities(ctx context.Context) ([]dto.UniversityResponse, error)
	GetUniversityByID(ctx context.Context, id int64) (*dto.UniversityResponse, error)
}

// universityServiceImpl implements UniversityService
type universityServiceImpl struct {
	universityRepo *repositories.UniversityRepository
}

// NewUniversityService creates a new UniversityService
func NewUniversityService(universityRepo *repositories.UniversityRepository) UniversityService {
	return &universityServiceImpl{universityRepo: universityRepo}
}

func (s *universityServiceImpl) GetAllUniversities(ctx context.Context) ([]dto.UniversityResponse, error) {
	universities, err := s.universityRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.UniversityResponse, 0, len(universities))
	for _, university := range universities {
		responses = append(responses, *dto.FromUniversity(university))
	}
	return responses, nil
}

func (s *universityServiceImpl) GetUniversityByID(ctx context.Context, id int64) (*dto.UniversityResponse, error) {
	university, err := s.universityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.FromUniversity(university), nil
}
