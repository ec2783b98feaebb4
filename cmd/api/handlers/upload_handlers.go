package handlers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"blog-admin/dto"
	"blog-admin/services"
	"blog-admin/storage"
)

// multipart 헤더 여유분
const multipartOverhead = 1 << 20

// @Summary Upload a cover image
// @Description Stores an image (max 5 MiB by default) and returns its public URL
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} dto.UploadResponseDTO
// @Failure 400 {object} dto.ErrorResponseDTO
// @Failure 413 {object} dto.ErrorResponseDTO
// @Router /api/v1/admin/uploads/image [post]
func AdminUploadImageHandler(svc *services.UploadService) gin.HandlerFunc {
	return func(c *gin.Context) {
		maxBytes := svc.MaxBytes()
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+multipartOverhead)

		fh, err := c.FormFile("file")
		if err != nil {
			var mbe *http.MaxBytesError
			if errors.As(err, &mbe) {
				tooLarge(c, maxBytes)
				return
			}
			abort(c, http.StatusBadRequest, dto.ErrorResponseDTO{Error: CodeInvalidRequest, Message: "Please choose an image to upload."})
			return
		}
		if fh.Size > maxBytes {
			tooLarge(c, maxBytes)
			return
		}

		f, err := fh.Open()
		if err != nil {
			writeError(c, err)
			return
		}
		defer f.Close()

		res, err := svc.UploadImage(c.Request.Context(), fh.Filename, f)
		if err != nil {
			if errors.Is(err, services.ErrFileTooLarge) {
				tooLarge(c, maxBytes)
				return
			}
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, dto.UploadResponseDTO{
			FileURL:  res.FileURL,
			Key:      res.Key,
			MimeType: res.MimeType,
			Size:     res.Size,
		})
	}
}

// ServeObjectHandler streams a stored object so file and memory backends have
// working public URLs.
func ServeObjectHandler(store storage.ObjectStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := storage.CleanKey(c.Param("key"))
		if err != nil {
			writeError(c, err)
			return
		}
		rc, err := store.Open(c.Request.Context(), key)
		if err != nil {
			writeError(c, err)
			return
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			writeError(c, err)
			return
		}
		contentType := mimetype.Detect(data).String()
		if i := strings.IndexByte(contentType, ';'); i >= 0 {
			contentType = contentType[:i]
		}
		c.Header("Cache-Control", "public, max-age=86400")
		c.Data(http.StatusOK, contentType, data)
	}
}
