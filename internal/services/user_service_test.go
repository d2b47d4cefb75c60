package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"apnajourney_backend/internal/apperrors"
	"apnajourney_backend/internal/models"
	"apnajourney_backend/internal/services/dto"
)

func createUserRequest() *dto.CreateUserRequest {
	return &dto.CreateUserRequest{
		Name:     "Anita Singh",
		Email:    "anita@example.com",
		Password: "long-enough-pass",
	}
}

func TestUserService_SelfSignupIsClosed(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(createUserRequest())
	assert.ErrorIs(t, err, apperrors.ErrRegistrationOff)
}

func TestUserService_AdminProvisionsAccount(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(createUserRequest())
	require.NoError(t, err)
	assert.Equal(t, "anita@example.com", created.Email)
	assert.Equal(t, string(models.UserRoleUser), string(created.Role))

	// The stored record never leaves with the password hash attached.
	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "long-enough-pass", stored.PasswordHash)
}

func TestUserService_CreateUserRejectsShortPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	req := createUserRequest()
	req.Password = "short"
	_, err := svc.CreateUser(req)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestUserService_CreateUserDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.CreateUser(createUserRequest())
	require.NoError(t, err)

	_, err = svc.CreateUser(createUserRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailExists)
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	created, err := svc.CreateUser(createUserRequest())
	require.NoError(t, err)

	name := "Anita Kumari Singh"
	phone := "9123456789"
	updated, err := svc.UpdateProfile(created.ID, &dto.UpdateProfileRequest{Name: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, phone, updated.Phone)

	_, err = svc.UpdateProfile("missing", &dto.UpdateProfileRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_AdminBansUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(createUserRequest())
	require.NoError(t, err)

	banned, err := svc.UpdateUser(&dto.AdminUpdateUserRequest{ID: created.ID, Status: "banned"})
	require.NoError(t, err)
	assert.Equal(t, "banned", string(banned.Status))

	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusBanned, stored.Status)
}

func TestUserService_AdminChangesRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	created, err := svc.CreateUser(createUserRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateUser(&dto.AdminUpdateUserRequest{ID: created.ID, Role: "admin", Status: "active"})
	require.NoError(t, err)
	assert.Equal(t, "admin", string(updated.Role))

	stored, err := repo.FindByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleAdmin, stored.Role)
	assert.Equal(t, models.UserStatusActive, stored.Status)
}

func TestUserService_ListUsersFilters(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.CreateUser(createUserRequest())
	require.NoError(t, err)

	other := createUserRequest()
	other.Email = "binod@example.com"
	other.Name = "Binod Oraon"
	created, err := svc.CreateUser(other)
	require.NoError(t, err)

	_, err = svc.UpdateUser(&dto.AdminUpdateUserRequest{ID: created.ID, Status: "banned"})
	require.NoError(t, err)

	active, total, err := svc.ListUsers(&dto.ListUsersQuery{Status: "active"}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, active, 1)
	assert.Equal(t, "anita@example.com", active[0].Email)
}
