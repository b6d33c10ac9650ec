package model

import "time"

// UserProgress 完成记录（completion log），同一用户/专题/题目只保留一行
type UserProgress struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_user_progress_key,priority:1" json:"user_id"`
	TopicSlug   string    `gorm:"size:100;not null;uniqueIndex:idx_user_progress_key,priority:2;index" json:"topic_slug"`
	QuestionID  uint      `gorm:"not null;uniqueIndex:idx_user_progress_key,priority:3" json:"question_id"`
	IsCompleted bool      `gorm:"not null;default:false" json:"is_completed"`
	SolvedAt    time.Time `json:"solved_at"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	User     *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Question *Question `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}

// Attempt 尝试记录（attempt log），与完成记录相互独立，只在读取时合并
type Attempt struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_progress_user_question,priority:1" json:"user_id"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_progress_user_question,priority:2" json:"question_id"`
	TopicSlug  string    `gorm:"size:100;not null;index" json:"topic_slug"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	User     *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Question *Question `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Attempt) TableName() string {
	return "progress"
}

// TopicSolvedCount GET /api/progress/:user_id 的返回项
type TopicSolvedCount struct {
	TopicSlug   string `json:"topic_slug"`
	SolvedCount int64  `json:"solved_count"`
}

// TopicProgress 按专题合并后的完成数与尝试数
type TopicProgress struct {
	TopicSlug string `json:"topic_slug"`
	Completed int64  `json:"completed"`
	Attempted int64  `json:"attempted"`
}

// TopicCount 聚合查询的中间结果
type TopicCount struct {
	TopicSlug string
	Total     int64
}

type AttemptedQuestion struct {
	QuestionID uint
	TopicSlug  string
}
