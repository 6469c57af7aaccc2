package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"challengeHub/internal/config"
	"challengeHub/internal/models"
	"challengeHub/internal/storage"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type MediaService interface {
	Upload(ctx context.Context, userID int64, fileName string, file io.Reader) (*models.MediaUpload, error)
}

type mediaService struct {
	storage      storage.Storage
	maxSize      int64
	maxDimension int
	now          func() time.Time
}

func NewMediaService(store storage.Storage, cfg *config.Config) MediaService {
	return &mediaService{
		storage:      store,
		maxSize:      cfg.MaxUploadSize,
		maxDimension: cfg.MaxImageDimension,
		now:          time.Now,
	}
}

var (
	imageTypes = map[string]bool{"image/jpeg": true, "image/png": true, "image/gif": true}
	videoTypes = map[string]bool{"video/mp4": true, "video/webm": true, "video/quicktime": true}
)

// Upload stores an image or a video for later use in a challenge post. Images larger than the
// configured dimension are downscaled first.
func (s *mediaService) Upload(ctx context.Context, userID int64, fileName string, file io.Reader) (*models.MediaUpload, error) {
	data, err := io.ReadAll(io.LimitReader(file, s.maxSize+1))
	if err != nil {
		return nil, translate("read upload", err, "")
	}
	if int64(len(data)) > s.maxSize {
		return nil, validationError(fmt.Sprintf("File is too large, the limit is %s", humanize.IBytes(uint64(s.maxSize))))
	}
	if len(data) == 0 {
		return nil, validationError("File is empty")
	}

	mtype := mimetype.Detect(data)
	contentType := mtype.String()
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}

	isImage := imageTypes[contentType]
	if !isImage && !videoTypes[contentType] {
		return nil, validationError(fmt.Sprintf("Unsupported media type %s", contentType))
	}

	if isImage {
		data, err = s.downscale(data, mtype.Extension())
		if err != nil {
			return nil, validationError(fmt.Sprintf("Invalid image: %v", err))
		}
	}

	objectName := s.objectName(userID, fileName, mtype.Extension())
	url, err := s.storage.Upload(ctx, objectName, bytes.NewReader(data), int64(len(data)), contentType, map[string]string{
		"original-filename": fileName,
		"user-id":           strconv.FormatInt(userID, 10),
		"uploaded-at":       s.now().Format(time.RFC3339),
	})
	if err != nil {
		return nil, translate("upload media", err, "")
	}

	upload := &models.MediaUpload{
		ContentType: contentType,
		Size:        int64(len(data)),
		SizeHuman:   humanize.IBytes(uint64(len(data))),
	}
	if isImage {
		upload.ImageURL = &url
	} else {
		upload.VideoURL = &url
	}

	return upload, nil
}

func (s *mediaService) downscale(data []byte, ext string) ([]byte, error) {
	dims, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if s.maxDimension <= 0 || (dims.Width <= s.maxDimension && dims.Height <= s.maxDimension) {
		return data, nil
	}

	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return nil, err
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, err
	}

	resized := imaging.Fit(img, s.maxDimension, s.maxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// objectName builds challenge-posts/<user>/<yyyy>/<mm>/<slug>-<uuid><ext>.
func (s *mediaService) objectName(userID int64, fileName, ext string) string {
	base := slug.Make(strings.TrimSuffix(filepath.Base(fileName), filepath.Ext(fileName)))
	if base == "" {
		base = "media"
	}

	now := s.now()
	return fmt.Sprintf("challenge-posts/%d/%d/%02d/%s-%s%s",
		userID,
		now.Year(),
		now.Month(),
		base,
		uuid.New().String(),
		ext)
}
