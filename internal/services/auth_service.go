package services

import (
	"context"
	"errors"
	"net/http"

	"jobportal_backend/internal/auth"
	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/media"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type AuthService struct {
	userRepo repositories.UserRepository
	signer   *media.Signer
}

func NewAuthService(userRepo repositories.UserRepository, signer *media.Signer) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		signer:   signer,
	}
}

func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		Avatar:       req.AvatarURL,
		Resume:       req.ResumeURL,
	}
	if req.Role == models.UserRoleEmployer {
		user.CompanyName = req.CompanyName
		user.CompanyDescription = req.CompanyDescription
		user.CompanyLogo = req.CompanyLogoURL
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "role", user.Role)

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserProfile(user),
	}, nil
}

func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewUserProfile(user),
	}, nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserProfile, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserProfile(user), nil
}

// SignUpload issues the signature a client needs for a direct upload
// into the given folder.
func (s *AuthService) SignUpload(ctx context.Context, folder string) (*media.UploadSignature, error) {
	if s.signer == nil {
		return nil, apperrors.New(apperrors.CodeExternalServiceError, "media", "media signing is not configured", http.StatusServiceUnavailable)
	}
	return s.signer.SignUploadRequest(folder), nil
}
