package dto

// UserCreateRequest is the public sign-up payload.
type UserCreateRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	FullName *string `json:"full_name"`
}

// UserUpdateRequest is a partial update: only non-nil fields are applied.
// A present password triggers a re-hash before persisting.
type UserUpdateRequest struct {
	Email    *string `json:"email" validate:"omitempty,email"`
	FullName *string `json:"full_name"`
	Password *string `json:"password" validate:"omitempty,min=8"`
}
