package service

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const folderMimeType = "application/vnd.google-apps.folder"

// StorageService uploads generated media to Google Drive so the user's
// videos outlive the ephemeral render-service URLs. Files are laid out
// as {rootFolder}/{userID}/{videoID}/.
// Implements StorageServiceInterface
type StorageService struct {
	client       *drive.Service
	rootFolderID string
}

// NewStorageService creates a new StorageService instance
// credentialsPath should be the path to the Service Account JSON file
func NewStorageService(credentialsPath string, rootFolderID string) (*StorageService, error) {
	driveService, err := drive.NewService(context.Background(), option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &StorageService{
		client:       driveService,
		rootFolderID: rootFolderID,
	}, nil
}

// Ensure StorageService implements StorageServiceInterface
var _ StorageServiceInterface = (*StorageService)(nil)

// ensureFolder returns the id of a child folder with the given name,
// creating it when absent.
func (s *StorageService) ensureFolder(ctx context.Context, name string, parentID string) (string, error) {
	query := fmt.Sprintf("name='%s' and '%s' in parents and mimeType='%s' and trashed=false",
		name, parentID, folderMimeType)

	r, err := s.client.Files.List().Q(query).Fields("files(id)").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to list folders: %w", err)
	}
	if len(r.Files) > 0 {
		return r.Files[0].Id, nil
	}

	folder, err := s.client.Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", name, err)
	}
	return folder.Id, nil
}

// uploadFile creates one file under the given folder and returns its public URL
func (s *StorageService) uploadFile(ctx context.Context, folderID string, name string, mimeType string, data []byte) (string, error) {
	file, err := s.client.Files.Create(&drive.File{
		Name:    name,
		Parents: []string{folderID},
	}).Media(bytes.NewReader(data), googleapi.ContentType(mimeType)).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", name, err)
	}
	return fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id), nil
}

// UploadVideoAssets stores the video and its thumbnail under the user's
// folder and returns the durable URLs. An empty thumbnail is allowed;
// only the video upload is required for success.
func (s *StorageService) UploadVideoAssets(ctx context.Context, userID string, videoID string, video []byte, thumbnail []byte) (*StoredAssets, error) {
	userFolderID, err := s.ensureFolder(ctx, userID, s.rootFolderID)
	if err != nil {
		return nil, err
	}
	videoFolderID, err := s.ensureFolder(ctx, videoID, userFolderID)
	if err != nil {
		return nil, err
	}

	videoURL, err := s.uploadFile(ctx, videoFolderID, videoID+".mp4", "video/mp4", video)
	if err != nil {
		return nil, err
	}
	log.Printf("✓ Video uploaded to durable storage (%d bytes)", len(video))

	assets := &StoredAssets{VideoURL: videoURL}

	if len(thumbnail) > 0 {
		thumbURL, err := s.uploadFile(ctx, videoFolderID, "thumbnail.jpg", "image/jpeg", thumbnail)
		if err != nil {
			// The video made it; a lost thumbnail is not worth failing over
			log.Printf("⚠️  Thumbnail upload failed: %v", err)
		} else {
			assets.ThumbnailURL = thumbURL
		}
	}

	return assets, nil
}
