package models

import "time"

// Student 表示一位學生，ID 由呼叫方提供
type Student struct {
	ID           string     `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	DateOfBirth  time.Time  `gorm:"not null" json:"dateOfBirth"`
	AadharNumber string     `gorm:"not null" json:"aadharNumber"`
	ProctorID    *string    `gorm:"index" json:"proctorId"` // 指導教授，可為空
	Proctor      *Professor `gorm:"foreignKey:ProctorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// EnrichedStudent 附帶指導教授資料的學生，沒有指導教授時 proctor 為 null
type EnrichedStudent struct {
	Student
	Proctor *Professor `json:"proctor"`
}

// Enrich 把預先載入的 Proctor 帶到輸出結構
func (s Student) Enrich() EnrichedStudent {
	return EnrichedStudent{Student: s, Proctor: s.Proctor}
}
