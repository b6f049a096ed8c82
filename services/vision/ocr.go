package vision

import (
	"context"
	"fmt"
	"io"

	visionapi "cloud.google.com/go/vision/apiv1"
	"google.golang.org/api/option"

	"calendxr/config"
)

// OCRService extracts text from flyer images.
type OCRService interface {
	ExtractText(ctx context.Context, image io.Reader) (string, error)
	Close() error
}

// GoogleOCRService is backed by the Cloud Vision text detection API.
type GoogleOCRService struct {
	client *visionapi.ImageAnnotatorClient
}

// NewGoogleOCRService builds the Vision client, using the service account
// file from configuration when one is set.
func NewGoogleOCRService(ctx context.Context) (*GoogleOCRService, error) {
	var opts []option.ClientOption
	if file := config.AppConfig.GCVCredentialsFile; file != "" {
		opts = append(opts, option.WithCredentialsFile(file))
	}
	client, err := visionapi.NewImageAnnotatorClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("vision: failed to create client: %w", err)
	}
	return &GoogleOCRService{client: client}, nil
}

// ExtractText runs text detection over the image and returns the full
// detected text block, empty when the image contains none.
func (s *GoogleOCRService) ExtractText(ctx context.Context, image io.Reader) (string, error) {
	img, err := visionapi.NewImageFromReader(image)
	if err != nil {
		return "", fmt.Errorf("vision: failed to read image: %w", err)
	}

	annotations, err := s.client.DetectTexts(ctx, img, nil, 0)
	if err != nil {
		return "", fmt.Errorf("vision: text detection failed: %w", err)
	}
	if len(annotations) == 0 {
		return "", nil
	}
	// The first annotation holds the whole detected block; the rest are
	// per-word fragments.
	return annotations[0].Description, nil
}

func (s *GoogleOCRService) Close() error {
	return s.client.Close()
}
