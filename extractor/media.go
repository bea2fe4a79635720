package extractor

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// mediaDir каталог внутри контейнера, где XLSX хранит встроенные изображения
const mediaDir = "xl/media/"

// defaultImageExt расширение по умолчанию для медиа-записей без расширения
const defaultImageExt = ".png"

// imagesSubdir подкаталог для извлеченных изображений внутри каталога вывода
const imagesSubdir = "product_images"

// ExtractMedia распаковывает встроенные изображения из контейнера прайс-листа.
// XLSX является ZIP-архивом; изображения лежат в xl/media. Возвращает
// изображения строго в порядке их записей в архиве — этот порядок служит
// резервным ключом сопоставления со строками. Нечитаемая отдельная запись
// пропускается с предупреждением и не прерывает извлечение остальных.
func ExtractMedia(archivePath, outputDir string) ([]ExtractedImage, error) {
	data, err := os.ReadFile(archivePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read archive %s: %w", archivePath, err)
	}

	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}

	imagesDir := filepath.Join(outputDir, imagesSubdir)
	if err := os.MkdirAll(imagesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	var images []ExtractedImage
	for _, entry := range reader.File {
		if !isMediaEntry(entry) {
			continue
		}

		img, err := extractEntry(entry, imagesDir, len(images))
		if err != nil {
			log.Printf("Warning: could not extract %s: %v", entry.Name, err)
			continue
		}
		images = append(images, img)
	}

	log.Printf("Extracted %d images from %s", len(images), archivePath)
	return images, nil
}

func isMediaEntry(entry *zip.File) bool {
	if entry.FileInfo().IsDir() {
		return false
	}
	return len(entry.Name) > len(mediaDir) && entry.Name[:len(mediaDir)] == mediaDir
}

// extractEntry читает одну медиа-запись и сохраняет её под уникальным именем
func extractEntry(entry *zip.File, imagesDir string, index int) (ExtractedImage, error) {
	rc, err := entry.Open()
	if err != nil {
		return ExtractedImage{}, fmt.Errorf("open entry: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return ExtractedImage{}, fmt.Errorf("read entry: %w", err)
	}

	ext := path.Ext(entry.Name)
	if ext == "" {
		ext = defaultImageExt
	}

	filename := GenerateImageFilename(ext)
	if err := os.WriteFile(filepath.Join(imagesDir, filename), data, 0o644); err != nil {
		return ExtractedImage{}, fmt.Errorf("write image file: %w", err)
	}

	return ExtractedImage{
		Index:        index,
		OriginalPath: entry.Name,
		Filename:     filename,
		Path:         path.Join(imagesSubdir, filename),
		Size:         int64(len(data)),
	}, nil
}

// GenerateImageFilename генерирует устойчивое к коллизиям имя файла:
// временная метка плюс случайный компонент.
func GenerateImageFilename(ext string) string {
	return fmt.Sprintf("product-%d-%s%s", time.Now().UnixMilli(), uuid.New().String()[:8], ext)
}
