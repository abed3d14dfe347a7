package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	response "clicknova_admin/internal/adapter/http/dto/response"
	"clicknova_admin/internal/infrastructure/storage"
	"clicknova_admin/internal/usecase/interfaces"
	"clicknova_admin/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// 5 MiB covers profile photos and Aadhar scans.
const maxUploadBytes = 5 << 20

type UploadHandler struct {
	storage interfaces.IObjectStorage
}

func NewUploadHandler(store interfaces.IObjectStorage) *UploadHandler {
	return &UploadHandler{storage: store}
}

// Upload godoc
// @Summary Upload a file
// @Description Stores a multipart file in object storage and returns its public URL. The caller attaches the URL to the document it is editing.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Success 201 {object} response.UploadResponse
// @Failure 400 {object} pkg.AppError
// @Failure 502 {object} pkg.AppError
// @Router /v1/uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("VALIDATION_ERROR", "A multipart file field named 'file' is required", http.StatusBadRequest))
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respondError(c, pkg.NewDomainErrorSimple("VALIDATION_ERROR", "File exceeds the 5 MiB limit", http.StatusBadRequest))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, pkg.NewDomainError("INTERNAL_ERROR", "Could not read uploaded file", err, http.StatusInternalServerError))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		respondError(c, pkg.NewDomainError("INTERNAL_ERROR", "Could not read uploaded file", err, http.StatusInternalServerError))
		return
	}

	objectName := fmt.Sprintf("uploads/%s%s", uuid.NewString(), filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	url, err := h.storage.Upload(c.Request.Context(), objectName, data, contentType)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedFileType) {
			respondError(c, pkg.NewDomainErrorSimple("VALIDATION_ERROR", "Only JPEG, PNG, WebP and PDF files are accepted", http.StatusBadRequest))
			return
		}
		respondError(c, pkg.NewDomainError("STORAGE_UNAVAILABLE", "Object storage is unavailable", err, http.StatusBadGateway))
		return
	}

	c.JSON(http.StatusCreated, response.UploadResponse{URL: url, ObjectName: objectName})
}
