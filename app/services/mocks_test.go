package services

import (
	"microblog/app/models"
	"microblog/app/repositories"
)

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*models.User)}
}

func (m *mockUserRepo) Create(user *models.User) error {
	if _, exists := m.users[user.Username]; exists {
		return repositories.ErrDuplicate
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserRepo) GetByUsername(username string) (*models.User, error) {
	user, exists := m.users[username]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}

type mockPostRepo struct {
	posts  map[int]*models.Post
	nextID int
	likes  *mockLikeRepo
	cmts   *mockCommentRepo
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func (m *mockPostRepo) Create(post *models.Post) error {
	post.ID = m.nextID
	m.nextID++
	post.BeforeCreate()
	m.posts[post.ID] = post
	return nil
}

func (m *mockPostRepo) GetByID(id int) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return post, nil
}

func (m *mockPostRepo) GetByIDWithCounts(id int) (*models.Post, int, int, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, 0, 0, repositories.ErrNotFound
	}
	likes := 0
	if m.likes != nil {
		likes = len(m.likes.likes[id])
	}
	comments := 0
	if m.cmts != nil {
		comments = len(m.cmts.comments[id])
	}
	return post, likes, comments, nil
}

func (m *mockPostRepo) List() ([]*models.Post, error) {
	posts := make([]*models.Post, 0, len(m.posts))
	for _, post := range m.posts {
		posts = append(posts, post)
	}
	return posts, nil
}

func (m *mockPostRepo) Mutate(id int, fn func(post *models.Post) error) (*models.Post, error) {
	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	updated := *post
	if err := fn(&updated); err != nil {
		return nil, err
	}
	m.posts[id] = &updated
	return &updated, nil
}

func (m *mockPostRepo) Delete(id int) error {
	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	if m.likes != nil {
		delete(m.likes.likes, id)
	}
	if m.cmts != nil {
		delete(m.cmts.comments, id)
	}
	return nil
}

type mockLikeRepo struct {
	likes map[int]map[string]bool
	posts *mockPostRepo
}

func newMockLikeRepo() *mockLikeRepo {
	return &mockLikeRepo{likes: make(map[int]map[string]bool)}
}

func (m *mockLikeRepo) Add(postID int, username string) (int, error) {
	if m.posts != nil {
		if _, exists := m.posts.posts[postID]; !exists {
			return 0, repositories.ErrPostNotFound
		}
	}
	set, exists := m.likes[postID]
	if !exists {
		set = make(map[string]bool)
		m.likes[postID] = set
	}
	if set[username] {
		return 0, repositories.ErrDuplicate
	}
	set[username] = true
	return len(set), nil
}

func (m *mockLikeRepo) Remove(postID int, username string) (int, error) {
	if m.posts != nil {
		if _, exists := m.posts.posts[postID]; !exists {
			return 0, repositories.ErrPostNotFound
		}
	}
	set, exists := m.likes[postID]
	if !exists || !set[username] {
		return 0, repositories.ErrNotFound
	}
	delete(set, username)
	return len(set), nil
}

func (m *mockLikeRepo) Count(postID int) (int, error) {
	return len(m.likes[postID]), nil
}

type mockCommentRepo struct {
	comments map[int][]*models.Comment
	nextID   int
	posts    *mockPostRepo
}

func newMockCommentRepo() *mockCommentRepo {
	return &mockCommentRepo{
		comments: make(map[int][]*models.Comment),
		nextID:   1,
	}
}

func (m *mockCommentRepo) Create(comment *models.Comment) error {
	if m.posts != nil {
		if _, exists := m.posts.posts[comment.PostID]; !exists {
			return repositories.ErrPostNotFound
		}
	}
	comment.ID = m.nextID
	m.nextID++
	comment.BeforeCreate()
	m.comments[comment.PostID] = append(m.comments[comment.PostID], comment)
	return nil
}

func (m *mockCommentRepo) ListByPost(postID int) ([]*models.Comment, error) {
	return m.comments[postID], nil
}

func (m *mockCommentRepo) CountByPost(postID int) (int, error) {
	return len(m.comments[postID]), nil
}
