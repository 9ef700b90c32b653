package demo

import (
	"context"
	"errors"
	"time"

	"github.com/ib-77/roptask/pkg/rop/task"
)

var (
	ErrUserNotFound     = errors.New("User not found")
	ErrPostsNotFound    = errors.New("Posts not found")
	ErrCommentsNotFound = errors.New("Comments not found")
)

type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Post struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

type Comment struct {
	ID      int    `json:"id"`
	Comment string `json:"comment"`
}

// Catalog is an in-memory blog store whose lookups take delay to answer.
type Catalog struct {
	delay    time.Duration
	users    map[int]User
	posts    map[int][]Post
	comments map[int][]Comment
}

func NewCatalog(delay time.Duration) *Catalog {
	return &Catalog{
		delay: delay,
		users: map[int]User{
			1: {ID: 1, Name: "John Doe"},
			2: {ID: 2, Name: "Jane Roe"},
		},
		posts: map[int][]Post{
			1: {{ID: 1, Title: "First Post"}, {ID: 2, Title: "Second Post"}},
			2: {{ID: 3, Title: "Drafts only"}},
		},
		comments: map[int][]Comment{
			1: {{ID: 1, Comment: "Nice post!"}},
		},
	}
}

func (c *Catalog) UserByID(ctx context.Context, id int) (User, error) {
	if err := wait(ctx, c.delay); err != nil {
		return User{}, err
	}
	u, ok := c.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (c *Catalog) PostsByUser(ctx context.Context, userID int) ([]Post, error) {
	if err := wait(ctx, c.delay); err != nil {
		return nil, err
	}
	p, ok := c.posts[userID]
	if !ok {
		return nil, ErrPostsNotFound
	}
	return p, nil
}

func (c *Catalog) CommentsByPost(ctx context.Context, postID int) ([]Comment, error) {
	if err := wait(ctx, c.delay); err != nil {
		return nil, err
	}
	cs, ok := c.comments[postID]
	if !ok {
		return nil, ErrCommentsNotFound
	}
	return cs, nil
}

func (c *Catalog) UserTask(id int) task.Task[User] {
	return task.Of(func(ctx context.Context) (User, error) {
		return c.UserByID(ctx, id)
	})
}

func (c *Catalog) PostsTask(userID int) task.Task[[]Post] {
	return task.Of(func(ctx context.Context) ([]Post, error) {
		return c.PostsByUser(ctx, userID)
	})
}

func (c *Catalog) CommentsTask(postID int) task.Task[[]Comment] {
	return task.Of(func(ctx context.Context) ([]Comment, error) {
		return c.CommentsByPost(ctx, postID)
	})
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
