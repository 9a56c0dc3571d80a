package repositories

import (
	"sort"

	"microblog/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

// Create creates a new comment. The id comes from a single sequence
// shared across all posts. The parent post is verified in the same
// transaction as the write, so a comment can never be committed
// against a deleted post; returns ErrPostNotFound if it is missing.
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	return update(r.db, func(txn *badger.Txn) error {
		if err := postExists(txn, comment.PostID); err != nil {
			return err
		}

		id, err := getNextID(txn, CommentSeqKey)
		if err != nil {
			return err
		}
		comment.ID = id
		comment.BeforeCreate()

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		return txn.Set(commentKey(comment.PostID, comment.ID), data)
	})
}

// ListByPost retrieves all comments for a post, oldest first. Keys are
// unpadded decimal so lexicographic iteration order is not numeric;
// sort by id after collecting.
func (r *BadgerCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	var comments []*models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := commentPrefix(postID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var comment models.Comment
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return err
			}
			comments = append(comments, &comment)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	sort.Slice(comments, func(i, j int) bool {
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}

// CountByPost returns how many comments a post has. Unknown posts
// count as zero.
func (r *BadgerCommentRepository) CountByPost(postID int) (int, error) {
	var count int

	err := r.db.View(func(txn *badger.Txn) error {
		count = countPrefix(txn, commentPrefix(postID))
		return nil
	})

	if err != nil {
		return 0, err
	}
	return count, nil
}
