package service

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pageza/portfolio/backend/internal/models"
	"github.com/pageza/portfolio/backend/internal/store"
	"github.com/sirupsen/logrus"
)

// MaxImageSize is the largest profile image accepted, in bytes.
const MaxImageSize = 5 << 20

// ObjectPutter is the subset of the S3 client used for uploads.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Image is an uploaded file awaiting storage.
type Image struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ImageService stores profile images in S3 and points the profile at them.
type ImageService struct {
	client  ObjectPutter
	bucket  string
	profile SingletonService[models.Profile]
}

// NewImageService creates a new ImageService instance
func NewImageService(client ObjectPutter, bucket string, profile SingletonService[models.Profile]) *ImageService {
	return &ImageService{client: client, bucket: bucket, profile: profile}
}

// UploadProfileImage stores img and sets it as the profile image.
func (s *ImageService) UploadProfileImage(ctx context.Context, img Image) (*models.Profile, error) {
	if _, err := s.profile.Get(ctx); err != nil {
		return nil, err
	}

	mediaType, _, err := mime.ParseMediaType(img.ContentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return nil, NewValidationError("image", "must be an image")
	}
	if img.Size <= 0 {
		return nil, NewValidationError("image", "must not be empty")
	}
	if img.Size > MaxImageSize {
		return nil, NewValidationError("image", fmt.Sprintf("must be at most %d bytes", MaxImageSize))
	}

	ext := strings.ToLower(filepath.Ext(img.Filename))
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(mediaType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	key := fmt.Sprintf("profile-images/%s%s", uuid.NewString(), ext)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          img.Body,
		ContentType:   aws.String(mediaType),
		ContentLength: aws.Int64(img.Size),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.bucket, key)
	logrus.WithField("url", publicURL).Info("Uploaded profile image")

	return s.profile.Update(ctx, store.Fields{"profileImage": publicURL})
}
