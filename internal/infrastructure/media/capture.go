package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/glowyn-go/internal/infrastructure/security"
)

// ErrPermissionDenied is returned when the camera or gallery is not permitted.
var ErrPermissionDenied = errors.New("media permission denied")

// Source identifies where a photo came from.
type Source string

const (
	SourceCamera  Source = "camera"
	SourceGallery Source = "gallery"
)

func ParseSource(s string) (Source, bool) {
	switch Source(strings.ToLower(s)) {
	case SourceCamera:
		return SourceCamera, true
	case SourceGallery:
		return SourceGallery, true
	}
	return "", false
}

// Permissions mirror the device grants for camera and photo library.
type Permissions struct {
	Camera  bool
	Gallery bool
}

// PhotoService is the photo intake boundary. A successful call yields an
// image URI; an empty upload means the user cancelled and yields "".
type PhotoService struct {
	processor   *ImageProcessor
	store       MediaStore
	permissions Permissions
	logger      *logging.ChanneledLogger
}

func NewPhotoService(processor *ImageProcessor, store MediaStore, permissions Permissions, logger *logging.ChanneledLogger) *PhotoService {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &PhotoService{processor: processor, store: store, permissions: permissions, logger: logger}
}

func (s *PhotoService) TakePhoto(ctx context.Context, data string) (string, error) {
	return s.Capture(ctx, SourceCamera, data)
}

func (s *PhotoService) PickImage(ctx context.Context, data string) (string, error) {
	return s.Capture(ctx, SourceGallery, data)
}

// Capture processes and stores one upload from source.
func (s *PhotoService) Capture(ctx context.Context, source Source, data string) (string, error) {
	allowed := (source == SourceCamera && s.permissions.Camera) ||
		(source == SourceGallery && s.permissions.Gallery)
	if !allowed {
		s.logger.Media().Warn("Photo capture refused", "source", source)
		return "", ErrPermissionDenied
	}

	if strings.TrimSpace(data) == "" {
		s.logger.Media().Debug("Photo capture cancelled", "source", source)
		return "", nil
	}

	encoded, err := s.processor.Process(data)
	if err != nil {
		s.logger.Media().Error("Photo processing failed", "source", source, "error", err)
		return "", err
	}

	name := security.GenerateULID() + ".webp"
	uri, err := s.store.Save(ctx, name, encoded, "image/webp")
	if err != nil {
		s.logger.Media().Error("Photo storage failed", "source", source, "error", err)
		return "", err
	}

	s.logger.Media().Info("Photo captured", "source", source, "uri", uri, "bytes", len(encoded))
	return uri, nil
}

func bytesReader(b []byte) io.Reader { return bytes.NewReader(b) }
