package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"cloud.google.com/go/storage"

	"github.com/shopcore/commerce-api/common"
	"github.com/shopcore/commerce-api/framework/connection"
	"github.com/shopcore/commerce-api/logger"
)

const signedURLExpiry = 15 * time.Minute

var ErrUnsupportedImageType = errors.New("unsupported image type")

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// AvatarService stores profile pictures on Cloud Storage under a fixed
// per-customer object name, so an upload always replaces the previous one.
type AvatarService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	bucket         string
}

func NewAvatarService(loggerProvider logger.Provider, conn *connection.Connection) *AvatarService {
	return &AvatarService{
		loggerProvider: loggerProvider,
		conn:           conn,
		bucket:         common.GetAvatarsBucket(),
	}
}

func objectName(customerID string) string {
	return fmt.Sprintf("avatars/%s", customerID)
}

func (s *AvatarService) Upload(ctx context.Context, customerID, contentType string, body io.Reader) (string, error) {
	if !allowedImageTypes[contentType] {
		return "", ErrUnsupportedImageType
	}

	object := objectName(customerID)

	w := s.conn.CloudStorage(ctx).Bucket(s.bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, body); err != nil {
		_ = w.Close()
		return "", err
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	return object, nil
}

func (s *AvatarService) SignedURL(ctx context.Context, object string) (string, error) {
	return s.conn.CloudStorage(ctx).Bucket(s.bucket).SignedURL(object, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  "GET",
		Expires: time.Now().Add(signedURLExpiry),
	})
}

func (s *AvatarService) Delete(ctx context.Context, object string) error {
	err := s.conn.CloudStorage(ctx).Bucket(s.bucket).Object(object).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return err
	}

	return nil
}
