package services

import (
	"errors"
	"sort"
	"time"

	"microblog/app/models"
	"microblog/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository) *PostService {
	return &PostService{postRepo: postRepo}
}

// CreatePost creates a new blog post authored by author
func (s *PostService) CreatePost(req *models.CreatePostRequest, author string) (*models.PostResponse, error) {
	now := time.Now().UTC()
	post := &models.Post{
		Title:     req.Title,
		Content:   req.Content,
		Author:    author,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	// A fresh post has no likes or comments yet.
	return models.NewPostResponse(post, 0, 0), nil
}

// GetPost retrieves a post by ID with its like and comment counts
func (s *PostService) GetPost(id int) (*models.PostResponse, error) {
	return s.compose(id)
}

// ListPosts retrieves every post with counts, most recent first. Equal
// creation times fall back to id order, which follows creation order.
func (s *PostService) ListPosts() ([]*models.PostResponse, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	sort.Slice(posts, func(i, j int) bool {
		if posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].ID > posts[j].ID
		}
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	result := make([]*models.PostResponse, 0, len(posts))
	for _, post := range posts {
		resp, err := s.compose(post.ID)
		if errors.Is(err, ErrNotFound) {
			// Deleted between the listing and this read.
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}

// UpdatePost applies a partial update on behalf of requester. The
// read, the ownership check and the write happen in one repository
// transaction, so racing updates cannot drop each other's fields.
// Only the author may update; UpdatedAt is refreshed on every
// successful update.
func (s *PostService) UpdatePost(id int, patch *models.UpdatePostRequest, requester string) (*models.PostResponse, error) {
	_, err := s.postRepo.Mutate(id, func(post *models.Post) error {
		if post.Author != requester {
			return ErrForbidden
		}
		post.ApplyPatch(patch)
		return nil
	})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return s.compose(id)
}

// DeletePost deletes a post and cascades to its likes and comments.
// Only the author may delete.
func (s *PostService) DeletePost(id int, requester string) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if post.Author != requester {
		return ErrForbidden
	}

	if err := s.postRepo.Delete(id); err != nil {
		// Gone since the ownership check; same outcome for the caller.
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// compose reads a post and its like and comment counts from a single
// snapshot
func (s *PostService) compose(id int) (*models.PostResponse, error) {
	post, likes, comments, err := s.postRepo.GetByIDWithCounts(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return models.NewPostResponse(post, likes, comments), nil
}
