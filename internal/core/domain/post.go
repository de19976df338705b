package domain

import "time"

type Post struct {
	ID        int64     `db:"id"`
	Content   string    `db:"content"`
	AuthorID  int64     `db:"author_id"`
	CreatedAt time.Time `db:"created_at"`
}

func NewPost(authorID int64, content string) *Post {
	return &Post{
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
}

// PostWithAuthor is a post joined with its author's username for API responses.
type PostWithAuthor struct {
	Post
	Username string `db:"username"`
}
