package models

type User struct {
	Username  string    `gorm:"primaryKey" json:"username" example:"butter_bridge"`
	Name      string    `json:"name" example:"jonny"`
	AvatarURL string    `gorm:"column:avatar_url" json:"avatar_url"`
	Articles  []Article `gorm:"foreignKey:Author;references:Username" json:"-"`
	Comments  []Comment `gorm:"foreignKey:Author;references:Username" json:"-"`
}
