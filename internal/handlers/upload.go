package handlers

import (
	"errors"
	"net/http"

	"waifu-maker/internal/contextutil"
)

// maxUploadMemory is how much of a multipart upload is kept in memory.
const maxUploadMemory = 32 << 20

// UploadResponse acknowledges an uploaded sample.
type UploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// UploadAudio accepts an audio sample. Voice cloning is not implemented; the
// file is read for its name only and discarded.
func UploadAudio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		logger.WarnContext(ctx, "invalid multipart upload", "error", err)
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "No file provided"})
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		// a part named file with an empty filename is parsed as a plain value
		if _, ok := r.MultipartForm.Value["file"]; ok && errors.Is(err, http.ErrMissingFile) {
			writeError(w, http.StatusBadRequest, ErrorResponse{Error: "No file selected"})
			return
		}
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "No file provided"})
		return
	}
	_ = file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, ErrorResponse{Error: "No file selected"})
		return
	}

	logger.InfoContext(ctx, "audio upload received", "filename", header.Filename, "size", header.Size)
	writeJSON(w, http.StatusOK, UploadResponse{
		Message:  "Audio upload endpoint (voice cloning not implemented)",
		Filename: header.Filename,
	})
}
