package services

import (
	"errors"

	"microblog/app/repositories"
)

// LikeService handles business logic for post likes. Post existence is
// enforced inside the repository's write transaction, so a like can
// never be recorded against a post that a concurrent delete removed.
type LikeService struct {
	likeRepo repositories.LikeRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(likeRepo repositories.LikeRepository) *LikeService {
	return &LikeService{likeRepo: likeRepo}
}

// Like records that username likes the post and returns the new count
func (s *LikeService) Like(postID int, username string) (int, error) {
	count, err := s.likeRepo.Add(postID, username)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPostNotFound):
			return 0, ErrNotFound
		case errors.Is(err, repositories.ErrDuplicate):
			return 0, ErrAlreadyLiked
		}
		return 0, err
	}
	return count, nil
}

// Unlike removes username's like of the post and returns the new count
func (s *LikeService) Unlike(postID int, username string) (int, error) {
	count, err := s.likeRepo.Remove(postID, username)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPostNotFound):
			return 0, ErrNotFound
		case errors.Is(err, repositories.ErrNotFound):
			return 0, ErrNotLiked
		}
		return 0, err
	}
	return count, nil
}
