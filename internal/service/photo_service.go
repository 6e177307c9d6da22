package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"hospital-dashboard/internal/infrastructure/storage"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var (
	ErrInvalidPhoto  = errors.New("photo (data URL or base64) is required")
	ErrPhotoTooLarge = errors.New("photo exceeds the maximum size")
)

const (
	photoMaxWidth  = 512
	photoMaxHeight = 512
	photoQuality   = 85
)

var dataURLPattern = regexp.MustCompile(`^data:image/([\w+.-]+);base64,(.+)$`)

// PhotoService normalizes uploaded identity photos to a bounded JPEG and
// hands them to the configured store.
type PhotoService struct {
	store   storage.PhotoStore
	maxSize int64
}

func NewPhotoService(store storage.PhotoStore, maxSize int64) *PhotoService {
	return &PhotoService{store: store, maxSize: maxSize}
}

// Store decodes a data URL or bare base64 payload and saves it as
// "<patientID>.jpg". It returns the store reference.
func (s *PhotoService) Store(ctx context.Context, patientID int64, payload string) (string, error) {
	raw, err := decodePhotoPayload(payload)
	if err != nil {
		return "", err
	}
	if s.maxSize > 0 && int64(len(raw)) > s.maxSize {
		return "", ErrPhotoTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhoto, err)
	}
	img = imaging.Fit(img, photoMaxWidth, photoMaxHeight, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(photoQuality)); err != nil {
		return "", fmt.Errorf("encode photo: %w", err)
	}

	return s.store.Save(ctx, fmt.Sprintf("%d.jpg", patientID), &buf)
}

func (s *PhotoService) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	return s.store.Open(ctx, ref)
}

func (s *PhotoService) Delete(ctx context.Context, ref string) error {
	if ref == "" {
		return nil
	}
	return s.store.Delete(ctx, ref)
}

func decodePhotoPayload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if m := dataURLPattern.FindStringSubmatch(payload); m != nil {
		payload = m[2]
	}
	if payload == "" {
		return nil, ErrInvalidPhoto
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		raw, err = base64.RawStdEncoding.DecodeString(payload)
	}
	if err != nil || len(raw) == 0 {
		return nil, ErrInvalidPhoto
	}
	return raw, nil
}
