package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for shared-item photo storage.
type StorageService interface {
	// UploadPhoto stores the file at localFilePath under the given
	// folder and returns the public delivery URL.
	UploadPhoto(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeletePhoto removes an uploaded photo by its public ID.
	DeletePhoto(ctx context.Context, publicID string) error
}

// StorageServiceImpl implements StorageService over Cloudinary.
type StorageServiceImpl struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService creates a new StorageServiceImpl instance.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &StorageServiceImpl{cld: cld}
}

// UploadPhoto uploads a file to Cloudinary and returns its secure delivery URL.
func (s *StorageServiceImpl) UploadPhoto(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", fmt.Errorf("StorageServiceImpl: failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("StorageServiceImpl: no delivery URL returned")
	}
	return result.SecureURL, nil
}

// DeletePhoto deletes a file from Cloudinary given its public ID.
func (s *StorageServiceImpl) DeletePhoto(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("StorageServiceImpl: failed to delete file: %w", err)
	}
	return nil
}
