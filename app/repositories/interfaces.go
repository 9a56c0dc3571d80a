package repositories

import "microblog/app/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	GetByIDWithCounts(id int) (*models.Post, int, int, error)
	List() ([]*models.Post, error)
	Mutate(id int, fn func(post *models.Post) error) (*models.Post, error)
	Delete(id int) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByPost(postID int) ([]*models.Comment, error)
	CountByPost(postID int) (int, error)
}

// LikeRepository defines the interface for like data access. Add and
// Remove return the new size of the post's like set.
type LikeRepository interface {
	Add(postID int, username string) (int, error)
	Remove(postID int, username string) (int, error)
	Count(postID int) (int, error)
}
