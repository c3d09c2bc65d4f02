package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/framecraft/storefront/internal/api/dto"
	"github.com/framecraft/storefront/internal/api/handlers"
	"github.com/framecraft/storefront/internal/domain/lensconfig"
	"github.com/framecraft/storefront/internal/infrastructure/files"
	"github.com/framecraft/storefront/internal/infrastructure/storage"
)

func newUploadsHandler(t *testing.T, repo storage.Repository) *handlers.UploadsHandler {
	t.Helper()
	store, err := files.NewStore(t.TempDir())
	require.NoError(t, err)
	return handlers.NewUploadsHandler(repo, store)
}

// multipartBody builds a multipart request body with a single file part
// carrying an explicit Content-Type.
func multipartBody(t *testing.T, filename, mimeType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	return &buf, writer.FormDataContentType()
}

func TestUploadsHandler_Upload(t *testing.T) {
	t.Run("stores a valid prescription image", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := newUploadsHandler(t, repo)

		body, contentType := multipartBody(t, "prescription.png", "image/png", []byte("png-bytes"))
		req := httptest.NewRequest(http.MethodPost, "/api/uploads/prescriptions", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		handler.Upload(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var response dto.UploadResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.NotEmpty(t, response.ID)
		assert.Equal(t, "prescription.png", response.FileName)
		assert.Equal(t, "image/png", response.MIMEType)
		assert.Equal(t, int64(len("png-bytes")), response.Size)
		assert.Contains(t, response.StorageKey, "prescriptions/")

		record, err := repo.GetFile(response.ID)
		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, response.StorageKey, record.StorageKey)
	})

	t.Run("accepts a PDF", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := newUploadsHandler(t, repo)

		body, contentType := multipartBody(t, "rx.pdf", "application/pdf", []byte("%PDF-1.4"))
		req := httptest.NewRequest(http.MethodPost, "/api/uploads/prescriptions", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		handler.Upload(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("rejects an unsupported file type and stores nothing", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := newUploadsHandler(t, repo)

		body, contentType := multipartBody(t, "notes.txt", "text/plain", []byte("not a prescription"))
		req := httptest.NewRequest(http.MethodPost, "/api/uploads/prescriptions", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		handler.Upload(rec, req)

		assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

		var response dto.APIError
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
		assert.Equal(t, dto.ErrCodeValidation, response.Code)
	})

	t.Run("rejects a file over the size limit", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := newUploadsHandler(t, repo)

		oversized := bytes.Repeat([]byte("a"), int(lensconfig.MaxFileSize)+1)
		body, contentType := multipartBody(t, "huge.jpg", "image/jpeg", oversized)
		req := httptest.NewRequest(http.MethodPost, "/api/uploads/prescriptions", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		handler.Upload(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("rejects a request without a file part", func(t *testing.T) {
		repo := storage.NewMockRepository()
		handler := newUploadsHandler(t, repo)

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		require.NoError(t, writer.WriteField("note", "no file here"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/uploads/prescriptions", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()

		handler.Upload(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
