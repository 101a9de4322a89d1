package service

// SignUpParams is what a new account is created from.
type SignUpParams struct {
	Username    string
	Email       string
	FirstName   string
	LastName    string
	Password    string
	Role        string
	PhoneNumber string // optional
}

// PostParams carries the writable fields of a post.
type PostParams struct {
	Title   string
	Content string
}
