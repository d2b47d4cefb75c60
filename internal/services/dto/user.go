package dto

type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,indian-phone"`
	ResumeURL *string `json:"resumeUrl,omitempty" validate:"omitempty,url"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"omitempty,indian-phone"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// AdminUpdateUserRequest covers PATCH /admin/users: status and role
// changes only.
type AdminUpdateUserRequest struct {
	ID     string `json:"id" validate:"required,uuid4"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=active banned"`
	Role   string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

type ListUsersQuery struct {
	Role   string `form:"role" validate:"omitempty,oneof=user admin"`
	Status string `form:"status" validate:"omitempty,oneof=active banned"`
	Search string `form:"search"`
}
