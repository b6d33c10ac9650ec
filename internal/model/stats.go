package model

// UserStats 字段名与前端保持一致
type UserStats struct {
	TotalSolved     int64 `json:"totalSolved"`
	TotalBookmarked int64 `json:"totalBookmarked"`
	HardSolved      int64 `json:"hardSolved"`
	AvgTime         int   `json:"avgTime"`
}

type LeaderboardEntry struct {
	ID          uint   `json:"id"`
	Username    string `json:"username"`
	TotalSolved int64  `json:"totalSolved"`
}
