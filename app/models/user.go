package models

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	return validate.Struct(u)
}

// Response returns the public view of the user.
func (u *User) Response() *UserResponse {
	return &UserResponse{
		Username: u.Username,
		Email:    u.Email,
	}
}
