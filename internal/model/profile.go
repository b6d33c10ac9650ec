package model

import "time"

// swagger:model UserProfile
type UserProfile struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"not null;uniqueIndex" json:"user_id"`
	Name         string    `gorm:"size:100" json:"name"`
	Gender       string    `gorm:"size:20" json:"gender"`
	Location     string    `gorm:"size:100" json:"location"`
	Birthday     string    `gorm:"size:20" json:"birthday"`
	Summary      string    `gorm:"type:text" json:"summary"`
	WebsiteLinks string    `gorm:"type:text" json:"website_links"`
	Github       string    `gorm:"size:255" json:"github"`
	Linkedin     string    `gorm:"size:255" json:"linkedin"`
	Twitter      string    `gorm:"size:255" json:"twitter"`
	Experience   string    `gorm:"type:text" json:"experience"`
	Education    string    `gorm:"type:text" json:"education"`
	Skills       string    `gorm:"type:text" json:"skills"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	User *User `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// ProfileMutableColumns upsert 时整行覆盖的列
var ProfileMutableColumns = []string{
	"name", "gender", "location", "birthday", "summary", "website_links",
	"github", "linkedin", "twitter", "experience", "education", "skills", "updated_at",
}
