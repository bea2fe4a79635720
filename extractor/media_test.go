package extractor

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestArchive собирает минимальный контейнер с медиа-каталогом
func writeTestArchive(t *testing.T, entries map[string][]byte) string {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	// Порядок записей фиксируем явно: от него зависит порядок извлечения
	names := []string{"docProps/app.xml", "xl/media/image1.jpeg", "xl/media/image2.png", "xl/worksheets/sheet1.xml"}
	for _, name := range names {
		data, ok := entries[name]
		if !ok {
			continue
		}
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("Failed to create archive entry %s: %v", name, err)
		}
		if _, err := f.Write(data); err != nil {
			t.Fatalf("Failed to write archive entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close archive: %v", err)
	}

	path := filepath.Join(t.TempDir(), "pricelist.xlsx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("Failed to write archive file: %v", err)
	}
	return path
}

// TestExtractMedia_OrderAndMetadata изображения извлекаются в порядке
// записей контейнера с сохранением размера и исходного пути
func TestExtractMedia_OrderAndMetadata(t *testing.T) {
	jpegData := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46}
	pngData := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00}
	archive := writeTestArchive(t, map[string][]byte{
		"docProps/app.xml":         []byte("<xml/>"),
		"xl/media/image1.jpeg":     jpegData,
		"xl/media/image2.png":      pngData,
		"xl/worksheets/sheet1.xml": []byte("<worksheet/>"),
	})
	outDir := t.TempDir()

	images, err := ExtractMedia(archive, outDir)
	if err != nil {
		t.Fatalf("ExtractMedia() error: %v", err)
	}
	if len(images) != 2 {
		t.Fatalf("len(images) = %d, want 2 (non-media entries must be ignored)", len(images))
	}

	first := images[0]
	if first.Index != 0 || first.OriginalPath != "xl/media/image1.jpeg" {
		t.Errorf("first image = %+v, want index 0 from image1.jpeg", first)
	}
	if first.Size != int64(len(jpegData)) {
		t.Errorf("first image size = %d, want %d", first.Size, len(jpegData))
	}
	if !strings.HasSuffix(first.Filename, ".jpeg") {
		t.Errorf("first image filename = %s, want .jpeg extension", first.Filename)
	}

	second := images[1]
	if second.Index != 1 || !strings.HasSuffix(second.Filename, ".png") {
		t.Errorf("second image = %+v, want index 1 with .png extension", second)
	}

	// Файлы действительно сохранены
	for _, img := range images {
		data, err := os.ReadFile(filepath.Join(outDir, filepath.FromSlash(img.Path)))
		if err != nil {
			t.Fatalf("extracted image %s not persisted: %v", img.Filename, err)
		}
		if int64(len(data)) != img.Size {
			t.Errorf("persisted size of %s = %d, want %d", img.Filename, len(data), img.Size)
		}
	}
}

// TestExtractMedia_UniqueFilenames сгенерированные имена не повторяются
func TestExtractMedia_UniqueFilenames(t *testing.T) {
	archive := writeTestArchive(t, map[string][]byte{
		"xl/media/image1.jpeg": {0x01},
		"xl/media/image2.png":  {0x02},
	})

	images, err := ExtractMedia(archive, t.TempDir())
	if err != nil {
		t.Fatalf("ExtractMedia() error: %v", err)
	}
	if len(images) == 2 && images[0].Filename == images[1].Filename {
		t.Errorf("duplicate generated filenames: %s", images[0].Filename)
	}
}

// TestExtractMedia_NoMedia контейнер без изображений — не ошибка
func TestExtractMedia_NoMedia(t *testing.T) {
	archive := writeTestArchive(t, map[string][]byte{
		"xl/worksheets/sheet1.xml": []byte("<worksheet/>"),
	})

	images, err := ExtractMedia(archive, t.TempDir())
	if err != nil {
		t.Fatalf("ExtractMedia() error: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("len(images) = %d, want 0", len(images))
	}
}

// TestExtractMedia_UnreadableArchive нечитаемый контейнер — фатальная ошибка
func TestExtractMedia_UnreadableArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a zip"), 0o644); err != nil {
		t.Fatalf("Failed to write broken archive: %v", err)
	}

	if _, err := ExtractMedia(path, t.TempDir()); err == nil {
		t.Error("ExtractMedia() should return error for broken archive")
	}

	if _, err := ExtractMedia(filepath.Join(t.TempDir(), "missing.xlsx"), t.TempDir()); err == nil {
		t.Error("ExtractMedia() should return error for missing archive")
	}
}
