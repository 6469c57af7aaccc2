package handlers

import (
	"errors"
	"net/http"

	"github.com/dustin/go-humanize"
)

// multipartOverhead leaves room for the form boundary and headers around the file part.
const multipartOverhead = 1 << 20

func (h *Handlers) UploadMedia(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteError(w, "File is too large, the limit is "+humanize.IBytes(uint64(h.Cfg.MaxUploadSize)), http.StatusBadRequest)
			return
		}
		writeErrorDetail(w, "Invalid multipart form", err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "File is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	upload, err := h.MediaService.Upload(r.Context(), caller.UserID, header.Filename, file)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"message": "Media uploaded successfully",
		"media":   upload,
	}, http.StatusCreated)
}
