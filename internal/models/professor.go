package models

import "time"

// Professor 表示一位教授，ID 由呼叫方提供
type Professor struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Seniority    string    `gorm:"not null" json:"seniority"` // 職級，可以是數字或文字
	AadharNumber string    `gorm:"not null" json:"aadharNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
