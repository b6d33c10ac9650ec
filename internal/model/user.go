package model

// swagger:model User
type User struct {
	BaseModel
	Username string `gorm:"size:100;not null" json:"username"`
	Email    string `gorm:"size:191;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// UserSummary 登录成功后返回给客户端的最小用户信息
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}
