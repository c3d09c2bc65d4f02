package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/framecraft/storefront/internal/api/dto"
	"github.com/framecraft/storefront/internal/domain/lensconfig"
	"github.com/framecraft/storefront/internal/infrastructure/files"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

// UploadsHandler receives prescription file uploads. Files are validated
// against the accepted types and size limit before anything is written, so
// a rejected upload leaves no trace.
type UploadsHandler struct {
	*Base
	store *files.Store
}

// NewUploadsHandler creates a new uploads handler.
func NewUploadsHandler(repo storage.Repository, store *files.Store) *UploadsHandler {
	return &UploadsHandler{Base: NewBase(repo), store: store}
}

// Upload handles POST /api/uploads/prescriptions. Expects a multipart form
// with a single "file" part.
func (h *UploadsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Cap the request body slightly above the file limit to account for
	// multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, lensconfig.MaxFileSize+64*1024)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, dto.BadRequestError("missing file upload"))
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")

	if err := lensconfig.ValidateFile(mimeType, header.Size); err != nil {
		switch {
		case errors.Is(err, lensconfig.ErrFileTooLarge):
			h.WriteError(w, http.StatusRequestEntityTooLarge,
				dto.ValidationError("file exceeds the 5 MB limit"))
		case errors.Is(err, lensconfig.ErrUnsupportedFileType):
			h.WriteError(w, http.StatusUnsupportedMediaType,
				dto.ValidationError("file must be a JPG, PNG or PDF"))
		default:
			h.WriteError(w, http.StatusBadRequest, dto.BadRequestError(err.Error()))
		}
		return
	}

	id := uuid.NewString()

	key, err := h.store.Save(id, mimeType, file)
	if err != nil {
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	record := &storage.UploadedFile{
		ID:         id,
		FileName:   header.Filename,
		MIMEType:   mimeType,
		SizeBytes:  header.Size,
		StorageKey: key,
		CreatedAt:  time.Now().UTC(),
	}

	if err := h.repo.SaveFile(record); err != nil {
		// Keep disk and database consistent.
		_ = h.store.Remove(key)
		h.WriteError(w, http.StatusInternalServerError, dto.InternalError())
		return
	}

	h.WriteJSON(w, http.StatusCreated, dto.UploadResponse{
		ID:         record.ID,
		FileName:   record.FileName,
		MIMEType:   record.MIMEType,
		Size:       record.SizeBytes,
		StorageKey: record.StorageKey,
	})
}
