package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// CreatePostRequest is the body of POST /api/posts.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdatePostRequest is the body of PUT /api/posts/{id}. Fields left out
// of the request keep their current value.
type UpdatePostRequest struct {
	Title   *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content *string `json:"content" validate:"omitempty,min=1"`
}

// CommentRequest is the body of POST /api/posts/{id}/comment.
type CommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// Validate checks a register request against its field constraints.
func (r *RegisterRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks a login request against its field constraints.
func (r *LoginRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks a create-post request against its field constraints.
func (r *CreatePostRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks an update-post request against its field constraints.
func (r *UpdatePostRequest) Validate() error {
	return validate.Struct(r)
}

// Validate checks a comment request against its field constraints.
func (r *CommentRequest) Validate() error {
	return validate.Struct(r)
}
