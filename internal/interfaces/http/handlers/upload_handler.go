package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "press-kit.backend/internal/domain/errors"
	"press-kit.backend/internal/interfaces/http/middleware"
	"press-kit.backend/internal/interfaces/http/response"
	"press-kit.backend/internal/usecases"
)

type UploadHandler struct {
	uploadUsecase *usecases.UploadUsecase
}

func NewUploadHandler(uploadUsecase *usecases.UploadUsecase) *UploadHandler {
	return &UploadHandler{uploadUsecase: uploadUsecase}
}

// UploadImage accepts a multipart image and returns its public locator.
// POST /api/v1/upload
func (h *UploadHandler) UploadImage(c *gin.Context) {
	in, file, err := h.readUpload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	asset, err := h.uploadUsecase.UploadImage(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"url": asset.URL})
}

// UploadAttachment accepts a multipart press release attachment and returns
// its locator plus the stored classification.
// POST /api/v1/upload/attachment
func (h *UploadHandler) UploadAttachment(c *gin.Context) {
	in, file, err := h.readUpload(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close()

	asset, err := h.uploadUsecase.UploadAttachment(c.Request.Context(), in)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"url":  asset.URL,
		"name": in.FileName,
		"type": asset.Kind,
		"size": asset.Size,
	})
}

func (h *UploadHandler) readUpload(c *gin.Context) (*usecases.UploadInput, interface{ Close() error }, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, nil, domainerrors.BadRequest("no file provided")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, nil, err
	}

	email, _ := middleware.GetUserEmail(c)
	return &usecases.UploadInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		PathHint:    c.PostForm("path"),
		UploadedBy:  email,
		Reader:      file,
	}, file, nil
}
