package extractor

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Имена файлов JSON-артефакта. Артефакт — контракт передачи между
// извлечением и импортом: импорт может выполняться отдельно и повторно
// по ранее сохраненному извлечению.
const (
	productsArtifact = "extracted_products.json"
	summaryArtifact  = "extraction_summary.json"
)

// Result результат одного прогона извлечения
type Result struct {
	Products []ProductRecord
	Images   []ExtractedImage
	Summary  Summary
}

// ExtractWorkbook выполняет полный прогон извлечения: изображения из
// медиа-каталога контейнера, товарные строки листа, якоря слоя рисунков
// (если есть) и сопоставление изображений со строками.
//
// Нечитаемый контейнер — фатальная ошибка; отказ позиционного чтения якорей
// только переводит сопоставление в порядковый режим.
func ExtractWorkbook(archivePath, outputDir string) (*Result, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	images, err := ExtractMedia(archivePath, outputDir)
	if err != nil {
		return nil, err
	}

	rows, err := ReadRows(archivePath)
	if err != nil {
		return nil, err
	}
	log.Printf("Read %d product rows from %s", len(rows), archivePath)

	anchors, err := ReadImageAnchors(archivePath)
	if err != nil {
		log.Printf("Warning: could not read image anchors, falling back to ordinal matching: %v", err)
		anchors = nil
	}
	if len(anchors) > 0 {
		log.Printf("Found %d image anchors in drawing layer", len(anchors))
	}

	matched := MatchImagesToRows(rows, images, anchors)

	products := make([]ProductRecord, 0, len(matched))
	withImages := 0
	for _, m := range matched {
		rec := ProductRecord{
			Code:           m.Row.Code,
			Name:           m.Row.Name,
			Specification:  m.Row.Specification,
			Unit:           m.Row.Unit,
			CostPrice:      m.Row.CostPrice,
			SuggestedPrice: m.Row.SuggestedPrice,
			Quantity:       m.Row.Quantity,
			Barcode:        m.Row.Barcode,
			WeightKg:       m.Row.WeightKg,
			SheetRowNumber: m.Row.SheetRowNumber,
		}
		for _, img := range m.Images {
			rec.Images = append(rec.Images, ImageRecord{
				Filename:     img.Filename,
				Path:         img.Path,
				OriginalPath: img.OriginalPath,
				Size:         img.Size,
			})
		}
		if len(rec.Images) > 0 {
			withImages++
		}
		products = append(products, rec)
	}

	return &Result{
		Products: products,
		Images:   images,
		Summary: Summary{
			TotalProducts:      len(products),
			TotalImages:        len(images),
			ProductsWithImages: withImages,
			ExtractionDate:     time.Now().Format(time.RFC3339),
		},
	}, nil
}

// WriteArtifact сохраняет массив товарных записей и сводку в каталог вывода
func (r *Result) WriteArtifact(outputDir string) error {
	if err := writeJSON(filepath.Join(outputDir, productsArtifact), r.Products); err != nil {
		return fmt.Errorf("failed to write products artifact: %w", err)
	}
	if err := writeJSON(filepath.Join(outputDir, summaryArtifact), r.Summary); err != nil {
		return fmt.Errorf("failed to write summary artifact: %w", err)
	}
	return nil
}

// LoadArtifact читает ранее сохраненный массив товарных записей
func LoadArtifact(path string) ([]ProductRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact %s: %w", path, err)
	}
	var products []ProductRecord
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse artifact %s: %w", path, err)
	}
	return products, nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
