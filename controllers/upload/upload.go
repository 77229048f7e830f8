package uploadControllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/MEETT007/Shoe-App-Backend/apperr"
	"github.com/MEETT007/Shoe-App-Backend/utils"
)

const maxUploadFiles = 5

// UploadDir is where product images land; main.go serves it under /uploads.
func UploadDir() string {
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		return dir
	}
	return "./uploads"
}

func saveFile(c *gin.Context, file *multipart.FileHeader) (string, error) {
	filename := uuid.NewString() + "_" + strings.ReplaceAll(file.Filename, " ", "_")

	dir := UploadDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/uploads/%s", filename), nil
}

// POST /api/upload
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.Fail(c, apperr.BadRequest("No file uploaded"))
		return
	}
	url, err := saveFile(c, file)
	if err != nil {
		utils.Fail(c, apperr.Internal(err))
		return
	}
	utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"image": url}})
}

// POST /api/upload/multiple
func UploadMultipleImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		utils.Fail(c, apperr.BadRequest("No files uploaded"))
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		utils.Fail(c, apperr.BadRequest("No files uploaded"))
		return
	}
	if len(files) > maxUploadFiles {
		utils.Fail(c, apperr.BadRequest(fmt.Sprintf("At most %d files per upload", maxUploadFiles)))
		return
	}

	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := saveFile(c, file)
		if err != nil {
			utils.Fail(c, apperr.Internal(err))
			return
		}
		urls = append(urls, url)
	}
	utils.Success(c, http.StatusOK, gin.H{"data": gin.H{"images": urls}})
}
