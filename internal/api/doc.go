// Package api 處理 HTTP 請求路由和處理。
//
// 這個包註冊學生、教授和圖書館會籍的 REST 路由，並組裝日誌、恢復、CORS 和指標中間件。
// handlers 子包負責將 HTTP 請求轉換為服務調用，並將結果和錯誤轉換回 JSON 響應。
package api
