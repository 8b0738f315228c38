package http

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/controle-epi-api/internal/domain"
)

// Uploader grava fotos enviadas como multipart no diretório público /uploads.
type Uploader struct {
	Dir      string
	MaxBytes int64
}

var photoExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}

// SavePhoto lê o campo "foto", grava em Dir/subdir com nome aleatório e devolve o caminho público.
func (u Uploader) SavePhoto(c *fiber.Ctx, subdir string) (string, error) {
	fh, err := c.FormFile("foto")
	if err != nil {
		return "", domain.MissingField("foto")
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !photoExtensions[ext] {
		return "", domain.Invalid("foto deve ser jpg, jpeg, png ou webp")
	}
	if u.MaxBytes > 0 && fh.Size > u.MaxBytes {
		return "", domain.Invalid("foto excede o tamanho máximo permitido")
	}
	dir := filepath.Join(u.Dir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := uuid.NewString() + ext
	if err := c.SaveFile(fh, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return "/uploads/" + subdir + "/" + name, nil
}
