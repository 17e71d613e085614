package handler

// InvalidateCacheResponse 料率キャッシュ無効化レスポンス
// @Description 料率キャッシュ無効化レスポンス
type InvalidateCacheResponse struct {
	Status string `json:"status" example:"invalidated"`
}
