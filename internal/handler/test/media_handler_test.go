package test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"challengeHub/internal/config"
	handlers "challengeHub/internal/handler"
	"challengeHub/internal/models"
	"challengeHub/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field, fileName string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if field != "" {
		part, err := writer.CreateFormFile(field, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/challenge-posts/media", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req.WithContext(handlers.WithCaller(req.Context(), *user))
}

func TestUploadMediaHandler(t *testing.T) {
	imageURL := "http://localhost:9000/challenge-media/challenge-posts/42/a.png"

	tests := []struct {
		name           string
		field          string
		mockSetup      func(*MockMediaService)
		expectedStatus int
	}{
		{
			name:  "Success",
			field: "file",
			mockSetup: func(m *MockMediaService) {
				m.On("Upload", mock.Anything, int64(42), "a.png", mock.Anything).Return(&models.MediaUpload{
					ImageURL:    &imageURL,
					ContentType: "image/png",
					Size:        4,
					SizeHuman:   "4 B",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing file",
			field:          "",
			mockSetup:      func(m *MockMediaService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Wrong field",
			field:          "image",
			mockSetup:      func(m *MockMediaService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "Rejected by service",
			field: "file",
			mockSetup: func(m *MockMediaService) {
				m.On("Upload", mock.Anything, int64(42), "a.png", mock.Anything).
					Return(nil, serviceError(service.ErrValidation, "Unsupported media type text/plain"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			media := new(MockMediaService)
			tt.mockSetup(media)

			handler := &handlers.Handlers{MediaService: media, Cfg: &config.Config{MaxUploadSize: 1 << 20}}
			rr := httptest.NewRecorder()
			handler.UploadMedia(rr, multipartRequest(t, tt.field, "a.png", []byte("\x89PNG")))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusCreated {
				uploaded := decodeBody(t, rr)["media"].(map[string]interface{})
				assert.Equal(t, imageURL, uploaded["image_url"])
				assert.NotContains(t, uploaded, "video_url")
			}
			media.AssertExpectations(t)
		})
	}
}

func TestUploadMediaHandler_BodyTooLarge(t *testing.T) {
	media := new(MockMediaService)
	handler := &handlers.Handlers{MediaService: media, Cfg: &config.Config{MaxUploadSize: 1024}}

	rr := httptest.NewRecorder()
	handler.UploadMedia(rr, multipartRequest(t, "file", "big.bin", bytes.Repeat([]byte{0x1}, 2<<20)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "File is too large, the limit is 1.0 KiB", decodeBody(t, rr)["message"])
	media.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
