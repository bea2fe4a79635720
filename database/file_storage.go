package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// PersistImageBytes сохраняет байты изображения в постоянное хранилище под
// сгенерированным уникальным именем и возвращает путь-ссылку для карточки
// товара. Имя комбинирует временную метку и случайный компонент, вероятность
// коллизии пренебрежимо мала.
func (db *CatalogDB) PersistImageBytes(data []byte, ext string) (string, error) {
	if ext == "" {
		ext = ".png"
	}
	filename := fmt.Sprintf("product-%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], ext)

	if err := os.WriteFile(filepath.Join(db.imagesDir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to persist image %s: %w", filename, err)
	}
	return "/uploads/products/" + filename, nil
}
