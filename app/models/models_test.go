package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPostValidation(t *testing.T) {
	t.Run("valid post", func(t *testing.T) {
		post := &Post{
			ID:        1,
			Title:     "Hello",
			Content:   "World",
			Author:    "alice",
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		assert.NoError(t, post.Validate())
	})

	t.Run("missing title", func(t *testing.T) {
		post := &Post{
			ID:        1,
			Content:   "World",
			Author:    "alice",
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		assert.Error(t, post.Validate())
	})

	t.Run("title too long", func(t *testing.T) {
		long := make([]byte, 201)
		for i := range long {
			long[i] = 'a'
		}
		post := &Post{
			ID:        1,
			Title:     string(long),
			Content:   "World",
			Author:    "alice",
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		assert.Error(t, post.Validate())
	})
}

func TestCreatePostRequestValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := &CreatePostRequest{Title: "hello", Content: "world"}
		assert.NoError(t, req.Validate())
	})

	t.Run("empty title", func(t *testing.T) {
		req := &CreatePostRequest{Title: "", Content: "world"}
		assert.Error(t, req.Validate())
	})

	t.Run("empty content", func(t *testing.T) {
		req := &CreatePostRequest{Title: "hello", Content: ""}
		assert.Error(t, req.Validate())
	})
}

func TestUpdatePostRequestValidation(t *testing.T) {
	title := "new title"
	empty := ""

	t.Run("empty patch is valid", func(t *testing.T) {
		assert.NoError(t, (&UpdatePostRequest{}).Validate())
	})

	t.Run("title only", func(t *testing.T) {
		assert.NoError(t, (&UpdatePostRequest{Title: &title}).Validate())
	})

	t.Run("present but empty title is invalid", func(t *testing.T) {
		assert.Error(t, (&UpdatePostRequest{Title: &empty}).Validate())
	})
}

func TestCommentRequestValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, (&CommentRequest{Content: "nice!"}).Validate())
	})

	t.Run("empty content", func(t *testing.T) {
		assert.Error(t, (&CommentRequest{Content: ""}).Validate())
	})

	t.Run("content over 1000 chars", func(t *testing.T) {
		long := make([]byte, 1001)
		for i := range long {
			long[i] = 'x'
		}
		assert.Error(t, (&CommentRequest{Content: string(long)}).Validate())
	})
}

func TestRegisterRequestValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := &RegisterRequest{Username: "alice", Email: "a@x.com", Password: "secret1"}
		assert.NoError(t, req.Validate())
	})

	t.Run("bad email", func(t *testing.T) {
		req := &RegisterRequest{Username: "alice", Email: "not-an-email", Password: "secret1"}
		assert.Error(t, req.Validate())
	})

	t.Run("short password", func(t *testing.T) {
		req := &RegisterRequest{Username: "alice", Email: "a@x.com", Password: "pw"}
		assert.Error(t, req.Validate())
	})
}

func TestApplyPatch(t *testing.T) {
	base := func() *Post {
		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		return &Post{
			ID:        1,
			Title:     "original",
			Content:   "content",
			Author:    "alice",
			CreatedAt: created,
			UpdatedAt: created,
		}
	}

	t.Run("only provided fields change", func(t *testing.T) {
		post := base()
		title := "patched"
		post.ApplyPatch(&UpdatePostRequest{Title: &title})

		assert.Equal(t, "patched", post.Title)
		assert.Equal(t, "content", post.Content)
	})

	t.Run("updated_at moves even on empty patch", func(t *testing.T) {
		post := base()
		before := post.UpdatedAt
		post.ApplyPatch(&UpdatePostRequest{})

		assert.Equal(t, "original", post.Title)
		assert.True(t, post.UpdatedAt.After(before))
	})

	t.Run("created_at is untouched", func(t *testing.T) {
		post := base()
		created := post.CreatedAt
		content := "new content"
		post.ApplyPatch(&UpdatePostRequest{Content: &content})

		assert.Equal(t, created, post.CreatedAt)
	})
}
