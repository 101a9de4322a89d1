package models

// User is a registered account. Posts reference it through Post.OwnerID.
type User struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	Username     string  `json:"username" gorm:"uniqueIndex;not null"`
	Email        string  `json:"email" gorm:"uniqueIndex;not null"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	PasswordHash string  `json:"-" gorm:"column:hashed_password;not null"` // don’t expose hash
	IsActive     bool    `json:"is_active" gorm:"default:true"`
	Role         string  `json:"role"`
	PhoneNumber  *string `json:"phone_number"`
}

// Principal is the identity carried by an access token.
type Principal struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
