package handlers

import (
	"fmt"
	"math/rand"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sitedesk/internal/storage"
	"sitedesk/internal/util"
	"sitedesk/pkg/metrics"
)

const (
	// MaxUploadFiles caps one upload batch.
	MaxUploadFiles = 10
	// MaxUploadSize is the per-file ceiling (10 MB).
	MaxUploadSize = 10 << 20
)

var imageExtensions = map[string]struct{}{
	".jpeg": {}, ".jpg": {}, ".png": {}, ".gif": {}, ".webp": {},
}

type UploadHandler struct {
	store storage.Store
}

func NewUploadHandler(store storage.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// SplitBatch caps a batch at max files. The accepted prefix is
// processed; a non-empty message reports the overflow to the caller.
func SplitBatch(count, max int) (accepted int, msg string) {
	if count <= max {
		return count, ""
	}
	return max, fmt.Sprintf("최대 %d개의 이미지만 업로드할 수 있습니다.", max)
}

// ValidateImageFile enforces the image-only, 10 MB rules before a byte
// is stored.
func ValidateImageFile(filename string, size int64, contentType string) (string, bool) {
	if size > MaxUploadSize {
		return "파일 크기가 10MB를 초과합니다.", false
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := imageExtensions[ext]; !ok {
		return "이미지 파일만 업로드할 수 있습니다.", false
	}
	if contentType != "" && !strings.HasPrefix(contentType, "image/") {
		return "이미지 파일만 업로드할 수 있습니다.", false
	}
	return "", true
}

// UploadImages stores a multipart batch under site-logs/ and returns
// the public URLs. Failures are reported once per batch, alongside any
// URLs that did make it, so the form can keep what succeeded.
func (h *UploadHandler) UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "업로드 요청이 올바르지 않습니다.")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		respondData(c, http.StatusOK, gin.H{"urls": []string{}})
		return
	}

	accepted, capMsg := SplitBatch(len(files), MaxUploadFiles)
	files = files[:accepted]

	urls := make([]string, 0, len(files))
	batchErr := capMsg

	for _, fh := range files {
		if msg, ok := ValidateImageFile(fh.Filename, fh.Size, fh.Header.Get("Content-Type")); !ok {
			batchErr = msg
			break
		}

		url, err := h.storeOne(c, fh)
		if err != nil {
			util.Log.Error("image upload failed",
				zap.String("filename", fh.Filename),
				zap.Error(err),
			)
			batchErr = "이미지 업로드에 실패했습니다."
			break
		}
		urls = append(urls, url)
		metrics.ImageUploadBytes.Add(float64(fh.Size))
	}

	resp := gin.H{"urls": urls}
	if batchErr != "" {
		resp["error"] = batchErr
	}
	respondData(c, http.StatusOK, resp)
}

func (h *UploadHandler) storeOne(c *gin.Context, fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("%d-%06d%s", time.Now().UnixMilli(), rand.Intn(1000000), ext)
	return h.store.Upload(c.Request.Context(), "site-logs/"+name, src)
}

type removeImagesRequest struct {
	URLs []string `json:"urls"`
}

// RemoveImages deletes stored photos by their public URLs. URLs outside
// this store are rejected rather than silently ignored.
func (h *UploadHandler) RemoveImages(c *gin.Context) {
	var req removeImagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	paths := make([]string, 0, len(req.URLs))
	for _, u := range req.URLs {
		p, ok := h.store.PathFromURL(u)
		if !ok {
			respondError(c, http.StatusBadRequest, "잘못된 이미지 URL입니다.")
			return
		}
		paths = append(paths, p)
	}

	if err := h.store.Remove(c.Request.Context(), paths); err != nil {
		util.Log.Error("image removal failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "이미지 삭제에 실패했습니다.")
		return
	}

	respondMessage(c, http.StatusOK, "이미지가 삭제되었습니다.")
}
