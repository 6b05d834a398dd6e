package models

import (
	"encoding/json"
	"time"
)

// 由系統管理的欄位，不能出現在 Attributes 中
var reservedMembershipFields = map[string]struct{}{
	"id":        {},
	"studentId": {},
	"createdAt": {},
	"updatedAt": {},
}

// LibraryMembership 表示學生的圖書館會籍，每位學生最多一筆。
// 除 studentId 外的欄位由呼叫方決定，原樣存放在 Attributes。
type LibraryMembership struct {
	ID         uint                   `gorm:"primaryKey"`
	StudentID  string                 `gorm:"uniqueIndex;not null"`
	Student    *Student               `gorm:"foreignKey:StudentID;references:ID"`
	Attributes map[string]interface{} `gorm:"type:text;serializer:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsReservedMembershipField 判斷欄位是否由系統管理
func IsReservedMembershipField(name string) bool {
	_, ok := reservedMembershipFields[name]
	return ok
}

// MergeAttributes 把新的欄位合併進會籍，未提供的欄位保持不變
func (m *LibraryMembership) MergeAttributes(attrs map[string]interface{}) {
	if m.Attributes == nil {
		m.Attributes = make(map[string]interface{}, len(attrs))
	}
	for k, v := range attrs {
		if IsReservedMembershipField(k) {
			continue
		}
		m.Attributes[k] = v
	}
}

// MarshalJSON 把 Attributes 攤平到會籍物件的頂層
func (m LibraryMembership) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(m.Attributes)+4)
	for k, v := range m.Attributes {
		out[k] = v
	}
	out["id"] = m.ID
	out["studentId"] = m.StudentID
	out["createdAt"] = m.CreatedAt
	out["updatedAt"] = m.UpdatedAt
	return json.Marshal(out)
}
