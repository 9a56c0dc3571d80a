package services

import (
	"errors"
	"time"

	"microblog/app/models"
	"microblog/app/repositories"
)

// CommentService handles business logic for comments
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// AddComment appends a comment to the post's sequence. The repository
// verifies the parent post inside its write transaction, so a comment
// can never be recorded against a post that a concurrent delete
// removed.
func (s *CommentService) AddComment(postID int, req *models.CommentRequest, author string) (*models.Comment, error) {
	comment := &models.Comment{
		PostID:    postID,
		Author:    author,
		Content:   req.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.commentRepo.Create(comment); err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return comment, nil
}

// ListPostComments retrieves all comments for a post, oldest first
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.commentRepo.ListByPost(postID)
}
