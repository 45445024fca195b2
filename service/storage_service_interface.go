package service

import "context"

// StoredAssets holds the durable URLs of an uploaded video and thumbnail
type StoredAssets struct {
	VideoURL     string
	ThumbnailURL string
}

// StorageServiceInterface defines the contract for durable media storage
type StorageServiceInterface interface {
	UploadVideoAssets(ctx context.Context, userID string, videoID string, video []byte, thumbnail []byte) (*StoredAssets, error)
}
