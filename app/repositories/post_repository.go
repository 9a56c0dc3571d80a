package repositories

import (
	"microblog/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create creates a new post, assigning the next id from the post
// sequence
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return update(r.db, func(txn *badger.Txn) error {
		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id
		post.BeforeCreate()

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(postKey(post.ID), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// List retrieves every post
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	var posts []*models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return err
			}
			posts = append(posts, &post)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return posts, nil
}

// Mutate loads a post, applies fn, and writes the result, all in one
// transaction, so two racing mutations can never overwrite each
// other's fields. An error from fn aborts the write and passes
// through unchanged.
func (r *BadgerPostRepository) Mutate(id int, fn func(post *models.Post) error) (*models.Post, error) {
	var post models.Post

	err := update(r.db, func(txn *badger.Txn) error {
		key := postKey(id)

		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		}); err != nil {
			return err
		}

		if err := fn(&post); err != nil {
			return err
		}

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByIDWithCounts retrieves a post together with its like and
// comment counts, all read from a single snapshot.
func (r *BadgerPostRepository) GetByIDWithCounts(id int) (*models.Post, int, int, error) {
	var post models.Post
	var likes, comments int

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		}); err != nil {
			return err
		}

		likes = countPrefix(txn, likePrefix(id))
		comments = countPrefix(txn, commentPrefix(id))
		return nil
	})

	if err != nil {
		return nil, 0, 0, err
	}
	return &post, likes, comments, nil
}

// Delete removes a post together with its entire like set and comment
// sequence. All three happen in one transaction, so no partial state is
// observable afterward.
func (r *BadgerPostRepository) Delete(id int) error {
	return update(r.db, func(txn *badger.Txn) error {
		key := postKey(id)

		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		if err := deletePrefix(txn, likePrefix(id)); err != nil {
			return err
		}
		if err := deletePrefix(txn, commentPrefix(id)); err != nil {
			return err
		}
		return txn.Delete(key)
	})
}
