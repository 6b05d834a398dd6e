package service

import (
	"time"

	"github.com/spf13/cast"
)

// 接受的日期格式，依序嘗試
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	time.RFC3339,
}

// parseDate 無法解析時回傳 ErrInvalidField，由呼叫方補上欄位名稱
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidField
}

// seniorityText 職級只能是數字或字串。0 和空字串視為未提供，回傳空字串
func seniorityText(raw interface{}) (string, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case float64:
		if v == 0 {
			return "", nil
		}
		return cast.ToStringE(v)
	default:
		return "", ErrInvalidField
	}
}

// patchField 描述一個允許部分更新的欄位：對應的資料庫欄位和值的轉換
type patchField struct {
	column  string
	convert func(interface{}) (interface{}, error)
}

// toText 用於必填的文字欄位，不接受 null 和空字串
func toText(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, ErrInvalidField
	}
	s, err := cast.ToStringE(v)
	if err != nil || s == "" {
		return nil, ErrInvalidField
	}
	return s, nil
}

func toDate(v interface{}) (interface{}, error) {
	s, ok := v.(string)
	if !ok {
		return nil, ErrInvalidField
	}
	return parseDate(s)
}

func toSeniority(v interface{}) (interface{}, error) {
	s, err := seniorityText(v)
	if err != nil || s == "" {
		return nil, ErrInvalidField
	}
	return s, nil
}

// toOptionalText 允許 null，用於可清空的外鍵
func toOptionalText(v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	return toText(v)
}

// buildUpdates 把請求中的 JSON 欄位轉成資料庫欄位，遇到不允許的欄位就拒絕整個請求
func buildUpdates(allowed map[string]patchField, patch map[string]interface{}) (map[string]interface{}, error) {
	updates := make(map[string]interface{}, len(patch))
	for key, value := range patch {
		field, ok := allowed[key]
		if !ok {
			return nil, &FieldError{Field: key, Err: ErrUnknownField}
		}
		converted, err := field.convert(value)
		if err != nil {
			return nil, invalidField(key)
		}
		updates[field.column] = converted
	}
	return updates, nil
}
