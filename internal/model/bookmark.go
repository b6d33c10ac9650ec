package model

import "time"

// Bookmark 当前接口只做计数
type Bookmark struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_bookmark_user_question" json:"user_id"`
	QuestionID uint      `gorm:"not null;uniqueIndex:idx_bookmark_user_question" json:"question_id"`
	CreatedAt  time.Time `json:"createdAt"`

	User     *User     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Question *Question `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (Bookmark) TableName() string {
	return "bookmarks"
}
