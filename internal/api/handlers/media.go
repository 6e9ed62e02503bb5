package handlers

import (
	"net/http"
	"strconv"

	"cavemap-backend/internal/auth"
	"cavemap-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps a single media upload at 50 MiB
const maxUploadBytes = 50 << 20

// MediaHandler handles HTTP requests for media files
type MediaHandler struct {
	service *service.MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(service *service.MediaService) *MediaHandler {
	return &MediaHandler{service: service}
}

// UploadFile stores an uploaded media file
// @Summary Upload media file
// @Description Upload a file, optionally attached to a cave; attaching requires edit rights on the cave
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File to upload"
// @Param cave_id formData int false "Cave the file belongs to"
// @Success 201 {object} service.MediaFileResponse "Successfully stored file"
// @Failure 400 {object} map[string]interface{} "Missing or oversized file"
// @Failure 403 {object} map[string]interface{} "No edit rights on the cave"
// @Security BearerAuth
// @Router /media [post]
func (h *MediaHandler) UploadFile(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	req := &service.UploadMediaRequest{
		OriginalFilename: fileHeader.Filename,
		ContentType:      fileHeader.Header.Get("Content-Type"),
		Size:             fileHeader.Size,
	}

	if caveIDStr := c.PostForm("cave_id"); caveIDStr != "" {
		caveID, err := strconv.ParseUint(caveIDStr, 10, 32)
		if err != nil || caveID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cave_id"})
			return
		}
		id := uint(caveID)
		req.CaveID = &id
	}

	if metadata := c.PostFormMap("metadata"); len(metadata) > 0 {
		req.Metadata = metadata
	}

	data, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer data.Close()

	file, err := h.service.UploadFile(c.Request.Context(), req, data, auth.UserEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, file)
}

// GetFile retrieves a media file record
// @Summary Get media file
// @Description Get a media file's record with its metadata
// @Tags media
// @Produce json
// @Param id path int true "Media file ID"
// @Success 200 {object} service.MediaFileResponse "Media file record"
// @Failure 404 {object} map[string]interface{} "Media file not found"
// @Router /media/{id} [get]
func (h *MediaHandler) GetFile(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	file, err := h.service.GetFileByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, file)
}

// DownloadFile streams a media file's blob
// @Summary Download media file
// @Description Stream the stored blob of a media file
// @Tags media
// @Produce octet-stream
// @Param id path int true "Media file ID"
// @Success 200 {file} binary "File content"
// @Failure 404 {object} map[string]interface{} "Media file not found"
// @Router /media/{id}/download [get]
func (h *MediaHandler) DownloadFile(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	file, reader, err := h.service.OpenFile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+file.OriginalFilename+`"`)
	c.DataFromReader(http.StatusOK, file.FileSize, file.ContentType, reader, nil)
}

// ListFiles lists media files
// @Summary List media files
// @Description List media files, optionally filtered by cave or uploader
// @Tags media
// @Produce json
// @Param cave_id query int false "Filter by cave"
// @Param uploaded_by query string false "Filter by uploader email"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} map[string]interface{} "Paginated file list"
// @Router /media [get]
func (h *MediaHandler) ListFiles(c *gin.Context) {
	limit, offset := pagination(c)

	var caveID *uint
	if caveIDStr := c.Query("cave_id"); caveIDStr != "" {
		value, err := strconv.ParseUint(caveIDStr, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cave_id"})
			return
		}
		id := uint(value)
		caveID = &id
	}

	files, total, err := h.service.ListFiles(caveID, c.Query("uploaded_by"), limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"files":  files,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

// DeleteFile removes a media file
// @Summary Delete media file
// @Description Delete a media file and its blob; uploader only
// @Tags media
// @Param id path int true "Media file ID"
// @Success 204 "Successfully deleted file"
// @Failure 403 {object} map[string]interface{} "Not the uploader"
// @Failure 404 {object} map[string]interface{} "Media file not found"
// @Security BearerAuth
// @Router /media/{id} [delete]
func (h *MediaHandler) DeleteFile(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteFile(c.Request.Context(), id, auth.UserEmail(c)); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
