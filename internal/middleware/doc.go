// Package middleware 提供了 HTTP 請求處理的中間件。
//
// 目前包含請求 ID 的產生與傳遞，以及按路由統計的 Prometheus 請求指標。
package middleware
