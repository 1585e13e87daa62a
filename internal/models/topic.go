package models

type Topic struct {
	Slug        string    `gorm:"primaryKey" json:"slug" example:"coding"`
	Description string    `json:"description" example:"Code is love, code is life"`
	Articles    []Article `gorm:"foreignKey:Topic;references:Slug" json:"-"`
}

// TopicInput carries a create payload. Pointer fields distinguish a field
// that was absent from one that was present with a zero value.
type TopicInput struct {
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
}
