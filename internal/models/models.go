package models

import "time"

const (
	RoleMember = "member"
	RoleAdmin  = "admin"
)

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

type Post struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	// Date is the publish date formatted as "Month DD, YYYY". It is stamped
	// once at creation and never refreshed on edit.
	Date   string `json:"date"`
	Body   string `json:"body"`
	ImgURL string `json:"img_url"`
	// AccountID is nil when the authoring account no longer exists.
	AccountID *int   `json:"account_id"`
	Author    string `json:"author"`
}

// PostFields carries the editable fields of a post through create and update.
type PostFields struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

type Comment struct {
	ID         int       `json:"id"`
	Text       string    `json:"text"`
	Date       time.Time `json:"date"`
	BlogPostID int       `json:"blog_post_id"`
	AccountID  int       `json:"account_id"`
	Author     string    `json:"author"`
}

type Session struct {
	Token     string    `json:"-"`
	AccountID int       `json:"account_id"`
	Expires   time.Time `json:"expires"`
	Created   time.Time `json:"created"`
}
