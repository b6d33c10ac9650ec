package model

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// swagger:model Question
type Question struct {
	ID         uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title      string     `gorm:"size:255;not null;index" json:"title"`
	Difficulty Difficulty `gorm:"size:20;not null;index" json:"difficulty"`
	Link       string     `gorm:"size:512" json:"link"`
	TopicSlug  string     `gorm:"size:100;index;not null" json:"topic_slug"`

	Topic *Topic `gorm:"foreignKey:TopicSlug;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

func (Question) TableName() string {
	return "questions"
}

// QuestionPage 分页题目列表，page/limit 原样回显
type QuestionPage struct {
	Questions []Question `json:"questions"`
	Total     int64      `json:"total"`
	Page      int        `json:"page"`
	Limit     int        `json:"limit"`
}
