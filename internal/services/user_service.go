package services

import (
	"context"
	"errors"
	"net/http"

	"jobportal_backend/internal/logger"
	"jobportal_backend/internal/media"
	"jobportal_backend/internal/models"
	"jobportal_backend/internal/repositories"
	"jobportal_backend/internal/services/dto"
	"jobportal_backend/pkg/apperrors"
)

type UserService struct {
	userRepo repositories.UserRepository
	signer   *media.Signer
}

func NewUserService(userRepo repositories.UserRepository, signer *media.Signer) *UserService {
	return &UserService{
		userRepo: userRepo,
		signer:   signer,
	}
}

func (s *UserService) GetProfile(ctx context.Context, userID string) (*dto.UserProfile, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	return dto.NewUserProfile(user), nil
}

func (s *UserService) GetPublicProfile(ctx context.Context, userID string) (*dto.PublicProfile, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	return dto.NewPublicProfile(user), nil
}

// UpdateProfile applies the non-nil fields of the request. Company fields
// are ignored for job seekers.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*dto.UserProfile, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.AvatarURL != nil {
		user.Avatar = *req.AvatarURL
	}
	if req.ResumeURL != nil {
		if !user.IsJobSeeker() {
			return nil, apperrors.ErrInvalidUserRole
		}
		user.Resume = *req.ResumeURL
	}
	if user.IsEmployer() {
		if req.CompanyName != nil {
			user.CompanyName = *req.CompanyName
		}
		if req.CompanyDescription != nil {
			user.CompanyDescription = *req.CompanyDescription
		}
		if req.CompanyLogoURL != nil {
			user.CompanyLogo = *req.CompanyLogoURL
		}
	}

	if err := s.userRepo.Update(user); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "profile updated", "user_id", userID)
	return dto.NewUserProfile(user), nil
}

// DeleteResume detaches the resume from the profile. Applications that
// already snapshotted it keep their copy. Only job seekers carry resumes.
func (s *UserService) DeleteResume(ctx context.Context, userID string) error {
	user, err := s.findUser(userID)
	if err != nil {
		return err
	}
	if !user.IsJobSeeker() {
		return apperrors.ErrInvalidUserRole
	}
	if user.Resume == "" {
		return apperrors.ErrResumeNotFound
	}

	if err := s.userRepo.ClearResume(userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

// GetResumeLink returns a signed delivery URL for a user's resume. Any
// authenticated caller may request it; an employer reviewing applicants
// needs the link to open the authenticated-delivery asset.
func (s *UserService) GetResumeLink(ctx context.Context, userID string) (*dto.ResumeLinkResponse, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	if user.Resume == "" {
		return nil, apperrors.ErrResumeNotFound
	}
	if s.signer == nil {
		return nil, apperrors.New(apperrors.CodeExternalServiceError, "media", "media signing is not configured", http.StatusServiceUnavailable)
	}

	publicID := media.ResumePublicID(user.Resume)
	return &dto.ResumeLinkResponse{
		URL: s.signer.SignedDeliveryURL(publicID, "raw"),
	}, nil
}

func (s *UserService) findUser(userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
