package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores uploaded flyer images so a draft can keep a
// reference to its source.
type StorageService interface {
	// UploadImage stores the image under the given folder and returns the
	// public URL of the stored asset.
	UploadImage(ctx context.Context, image io.Reader, folder string) (string, error)
	// DeleteImage removes a stored asset by its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorage implements StorageService on Cloudinary.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &CloudinaryStorage{cld: cld}
}

// UploadImage uploads the image and returns its delivery URL.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, image io.Reader, folder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, image, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload image: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("storage: no URL returned for upload")
	}
	return result.SecureURL, nil
}

// DeleteImage removes a stored asset.
func (s *CloudinaryStorage) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete image %s: %w", publicID, err)
	}
	return nil
}
