package services

import (
	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/auth"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/repositories"
	"apnajourney_backend/internal/services/dto"
)

type UserService interface {
	Register(req *dto.CreateUserRequest) (*dto.UserDTO, error)
	GetProfile(userID string) (*dto.UserDTO, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error)
	ListUsers(query *dto.ListUsersQuery, page, limit int) ([]dto.UserDTO, int64, error)
	CreateUser(req *dto.CreateUserRequest) (*dto.UserDTO, error)
	UpdateUser(req *dto.AdminUpdateUserRequest) (*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// Register is the public self-signup endpoint. Signups are closed:
// accounts are provisioned by administrators only.
func (s *UserServiceImpl) Register(req *dto.CreateUserRequest) (*dto.UserDTO, error) {
	return nil, apperrors.ErrRegistrationOff
}

func (s *UserServiceImpl) GetProfile(userID string) (*dto.UserDTO, error) {
	user, err := s.find(userID)
	if err != nil {
		return nil, err
	}
	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

func (s *UserServiceImpl) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*dto.UserDTO, error) {
	user, err := s.find(userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.ResumeURL != nil {
		user.ResumeURL = *req.ResumeURL
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

func (s *UserServiceImpl) ListUsers(query *dto.ListUsersQuery, page, limit int) ([]dto.UserDTO, int64, error) {
	users, total, err := s.userRepo.FindWithFilter(repositories.UserFilter{
		Role:     models.UserRole(query.Role),
		Status:   models.UserStatus(query.Status),
		Search:   query.Search,
		Page:     page,
		PageSize: limit,
	})
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	dtos := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		dtos = append(dtos, dto.NewUserDTO(&users[i]))
	}
	return dtos, total, nil
}

// CreateUser provisions an account on behalf of an administrator.
func (s *UserServiceImpl) CreateUser(req *dto.CreateUserRequest) (*dto.UserDTO, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError([]apperrors.FieldError{
			{Field: "password", Message: err.Error()},
		})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleUser
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
		Role:         role,
		Status:       models.UserStatusActive,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailExists
		}
		return nil, apperrors.InternalError(err)
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

// UpdateUser applies an administrative status or role change. A ban or
// unban is a targeted status write; a role change rewrites the row.
func (s *UserServiceImpl) UpdateUser(req *dto.AdminUpdateUserRequest) (*dto.UserDTO, error) {
	user, err := s.find(req.ID)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		user.Status = models.UserStatus(req.Status)
	}
	if req.Role != "" {
		user.Role = models.UserRole(req.Role)

		if err := s.userRepo.Update(user); err != nil {
			return nil, apperrors.InternalError(err)
		}
	} else if req.Status != "" {
		if err := s.userRepo.UpdateStatus(user.ID, user.Status); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	userDTO := dto.NewUserDTO(user)
	return &userDTO, nil
}

func (s *UserServiceImpl) find(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
