package model

// swagger:model Topic
type Topic struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Name string `gorm:"size:150;not null" json:"name"`
}

func (Topic) TableName() string {
	return "topics"
}

// swagger:model Explanation
type Explanation struct {
	BaseModel
	TopicSlug  string  `gorm:"size:100;uniqueIndex;not null" json:"topic_slug"`
	Definition *string `gorm:"type:text" json:"definition"`
	Discussion *string `gorm:"type:text" json:"discussion"`
	Example    *string `gorm:"type:text" json:"example"`
	Types      *string `gorm:"type:text" json:"types"`
	Visual     *string `gorm:"type:text" json:"visual"`

	Topic *Topic `gorm:"foreignKey:TopicSlug;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Explanation) TableName() string {
	return "explanations"
}
