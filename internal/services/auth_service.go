package services

import (
	"time"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/auth"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/repositories"
	"apnajourney_backend/internal/services/dto"
)

type AuthService interface {
	UserLogin(req *dto.LoginRequest) (*dto.UserLoginResponse, error)
	AdminLogin(req *dto.LoginRequest) (*dto.AdminLoginResponse, error)
	CurrentUser(userID string) (*dto.UserDTO, error)
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	adminRepo   repositories.AdminRepository
	userIssuer  *auth.TokenIssuer
	adminIssuer *auth.TokenIssuer
}

func NewAuthService(
	userRepo repositories.UserRepository,
	adminRepo repositories.AdminRepository,
	userIssuer *auth.TokenIssuer,
	adminIssuer *auth.TokenIssuer,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		adminRepo:   adminRepo,
		userIssuer:  userIssuer,
		adminIssuer: adminIssuer,
	}
}

// UserLogin authenticates against the user credential store and issues
// a user-class token.
func (s *AuthServiceImpl) UserLogin(req *dto.LoginRequest) (*dto.UserLoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.IsBanned() {
		return nil, apperrors.ErrUserBanned
	}

	token, err := s.userIssuer.Issue(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserLoginResponse{
		User:  dto.NewUserDTO(user),
		Token: token,
	}, nil
}

// AdminLogin authenticates against the admin credential store and
// issues an admin-class token.
func (s *AuthServiceImpl) AdminLogin(req *dto.LoginRequest) (*dto.AdminLoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrAdminNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, admin.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if admin.Status != models.AdminStatusActive {
		return nil, apperrors.ErrAdminInactive
	}

	token, err := s.adminIssuer.Issue(admin.ID, admin.Email, string(admin.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	now := time.Now()
	admin.LastLogin = &now
	// Best-effort; login must not fail on a stamp write.
	_ = s.adminRepo.UpdateLastLogin(admin.ID, now)

	return &dto.AdminLoginResponse{
		Admin: dto.NewAdminDTO(admin),
		Token: token,
	}, nil
}

func (s *AuthServiceImpl) CurrentUser(userID string) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}
