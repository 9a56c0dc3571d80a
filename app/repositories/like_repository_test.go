package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeRepository(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewBadgerPostRepository(db)
	repo := NewBadgerLikeRepository(db)

	first := newTestPost("first")
	second := newTestPost("second")
	assert.NoError(t, postRepo.Create(first))
	assert.NoError(t, postRepo.Create(second))

	t.Run("add returns the running count", func(t *testing.T) {
		count, err := repo.Add(first.ID, "bob")
		assert.NoError(t, err)
		assert.Equal(t, 1, count)

		count, err = repo.Add(first.ID, "carol")
		assert.NoError(t, err)
		assert.Equal(t, 2, count)

		count, err = repo.Count(first.ID)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("duplicate like", func(t *testing.T) {
		_, err := repo.Add(first.ID, "bob")
		assert.ErrorIs(t, err, ErrDuplicate)

		count, err := repo.Count(first.ID)
		assert.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("same user across posts", func(t *testing.T) {
		count, err := repo.Add(second.ID, "bob")
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("remove returns the running count", func(t *testing.T) {
		count, err := repo.Remove(first.ID, "bob")
		assert.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("remove absent like", func(t *testing.T) {
		_, err := repo.Remove(first.ID, "bob")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("add and remove on a missing post", func(t *testing.T) {
		_, err := repo.Add(99, "bob")
		assert.ErrorIs(t, err, ErrPostNotFound)

		_, err = repo.Remove(99, "bob")
		assert.ErrorIs(t, err, ErrPostNotFound)
	})

	t.Run("count for unknown post is zero", func(t *testing.T) {
		count, err := repo.Count(99)
		assert.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestLikeRepositoryRejectsDeletedPost(t *testing.T) {
	db := setupTestDB(t)
	postRepo := NewBadgerPostRepository(db)
	repo := NewBadgerLikeRepository(db)

	post := newTestPost("short-lived")
	assert.NoError(t, postRepo.Create(post))
	assert.NoError(t, postRepo.Delete(post.ID))

	// The post check runs inside the same write transaction as the
	// insert, so a like can never land after a cascading delete and
	// leave a stranded entry behind.
	_, err := repo.Add(post.ID, "bob")
	assert.ErrorIs(t, err, ErrPostNotFound)

	count, err := repo.Count(post.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}
