package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kerem/clubsphere/internal/app/models"
	"github.com/kerem/clubsphere/internal/app/models/dto"
	"github.com/kerem/clubsphere/internal/app/repositories"
	"github.com/kerem/clubsphere/internal/pkg/apperrors"
	"github.com/kerem/clubsphere/internal/pkg/auth"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	userRepo       *repositories.UserRepository
	universityRepo *repositories.UniversityRepository
	tokenRepo      *repositories.TokenRepository
	jwtService     *auth.JWTService
	logger         zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	universityRepo *repositories.UniversityRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:       userRepo,
		universityRepo: universityRepo,
		tokenRepo:      tokenRepo,
		jwtService:     jwtService,
		logger:         logger,
	}
}

// Register creates a new student account. The email must belong to the
// university's domain.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	university, err := s.universityRepo.GetByID(ctx, req.UniversityID)
	if err != nil {
		return nil, err
	}

	if university.Domain != "" && !strings.HasSuffix(strings.ToLower(req.Email), "@"+university.Domain) {
		return nil, apperrors.NewValidationError("Email must belong to the university domain " + university.Domain)
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &models.User{
		Email:        strings.ToLower(req.Email),
		Password:     hashedPassword,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleStudent,
		UniversityID: req.UniversityID,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Int64("userID", id).Str("email", user.Email).Msg("User registered")
	return s.issueTokens(ctx, user)
}

// Login authenticates a user by email and password
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(req.Email))
	if err != nil {
		// Do not reveal whether the account exists
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.IsBlocked {
		return nil, apperrors.ErrAccountBlocked
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token and issues a new pair
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	userID, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsBlocked {
		return nil, apperrors.ErrAccountBlocked
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	resp, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}
	return &resp.Token, nil
}

// Logout revokes the given refresh token
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token pair")
		return nil, err
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             int64(expiresIn),
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: int64(refreshExpiresIn),
		},
		User: dto.FromUser(user),
	}, nil
}
