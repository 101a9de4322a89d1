package models

// Post is a blog entry owned by exactly one user.
type Post struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Title   string `json:"title" gorm:"not null"`
	Content string `json:"content" gorm:"not null"`
	OwnerID uint   `json:"owner_id" gorm:"not null;index"`
	Owner   *User  `json:"-" gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
