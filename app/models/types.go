package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User represents a registered account. Handlers respond with
// UserResponse, never with this struct, so the hash stays server-side.
type User struct {
	Username     string `json:"username" validate:"required,min=3,max=50"`
	Email        string `json:"email" validate:"required,email"`
	PasswordHash string `json:"password_hash" validate:"required"`
}

// Post represents a blog post.
type Post struct {
	ID        int       `json:"id" validate:"required,gte=0"`
	Title     string    `json:"title" validate:"required,min=1,max=200"`
	Content   string    `json:"content" validate:"required,min=1"`
	Author    string    `json:"author" validate:"required"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
	UpdatedAt time.Time `json:"updated_at" validate:"required"`
}

// Comment represents a comment on a blog post. Comment ids come from a
// single counter shared across all posts.
type Comment struct {
	ID        int       `json:"id" validate:"required,gte=0"`
	PostID    int       `json:"post_id" validate:"required,gte=0"`
	Author    string    `json:"author" validate:"required"`
	Content   string    `json:"content" validate:"required,min=1,max=1000"`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}
