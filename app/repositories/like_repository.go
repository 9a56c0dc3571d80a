package repositories

import (
	"github.com/dgraph-io/badger/v4"
)

// BadgerLikeRepository implements LikeRepository using BadgerDB. Each
// like is one key, so the set invariant (a user appears at most once
// per post) falls out of key uniqueness.
type BadgerLikeRepository struct {
	db *badger.DB
}

// NewBadgerLikeRepository creates a new BadgerLikeRepository
func NewBadgerLikeRepository(db *badger.DB) *BadgerLikeRepository {
	return &BadgerLikeRepository{db: db}
}

// Add records that username likes the post and returns the new size of
// the like set. The post is verified in the same transaction as the
// write, so a like can never be committed against a deleted post.
// Returns ErrPostNotFound if the post is missing and ErrDuplicate if
// the like already exists.
func (r *BadgerLikeRepository) Add(postID int, username string) (int, error) {
	var count int
	err := update(r.db, func(txn *badger.Txn) error {
		if err := postExists(txn, postID); err != nil {
			return err
		}

		key := likeKey(postID, username)
		_, err := txn.Get(key)
		if err == nil {
			return ErrDuplicate
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		count = countPrefix(txn, likePrefix(postID)) + 1
		return txn.Set(key, []byte{})
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Remove drops username's like of the post and returns the new size of
// the like set. Returns ErrPostNotFound if the post is missing and
// ErrNotFound if no such like exists.
func (r *BadgerLikeRepository) Remove(postID int, username string) (int, error) {
	var count int
	err := update(r.db, func(txn *badger.Txn) error {
		if err := postExists(txn, postID); err != nil {
			return err
		}

		key := likeKey(postID, username)
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		count = countPrefix(txn, likePrefix(postID)) - 1
		return txn.Delete(key)
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Count returns the size of the post's like set, zero for unknown
// posts.
func (r *BadgerLikeRepository) Count(postID int) (int, error) {
	var count int

	err := r.db.View(func(txn *badger.Txn) error {
		count = countPrefix(txn, likePrefix(postID))
		return nil
	})

	if err != nil {
		return 0, err
	}
	return count, nil
}
