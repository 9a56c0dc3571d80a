package models

import "time"

// UserResponse is the public view of a user.
type UserResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PostResponse is a post together with its like and comment counts.
type PostResponse struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
}

// LikeResponse is returned by the like and unlike endpoints.
type LikeResponse struct {
	Message    string `json:"message"`
	LikesCount int    `json:"likes_count"`
}

// MessageResponse carries a bare confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// NewPostResponse composes a post with its counts.
func NewPostResponse(post *Post, likes, comments int) *PostResponse {
	return &PostResponse{
		ID:            post.ID,
		Title:         post.Title,
		Content:       post.Content,
		Author:        post.Author,
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
		LikesCount:    likes,
		CommentsCount: comments,
	}
}
