// Package importer выполняет идемпотентную загрузку результата извлечения
// в каталог магазина: разрешение категорий, копирование изображений в
// постоянное хранилище и создание либо обновление карточек товаров с
// журналом итогов по каждой строке.
package importer

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"storefront/catalog"
	"storefront/categorizer"
	"storefront/extractor"
	"storefront/pricing"
)

// Options параметры прогона импорта
type Options struct {
	// DryRun выполняет валидацию, категоризацию и расчет цен без записи
	// в каталог и без копирования файлов
	DryRun bool
	// Overwrite обновляет существующие товары вместо пропуска
	Overwrite bool
	// Pricing конфигурация конвертации цен
	Pricing pricing.Config
	// SourceDirs каталоги-кандидаты, где искать извлеченные изображения
	SourceDirs []string
}

// progressInterval период логирования прогресса батча
const progressInterval = 100

// Result итог одного прогона импорта
type Result struct {
	Total          int
	Created        int
	Updated        int
	Skipped        int
	Failed         int
	Ledger         []LedgerEntry
	CategoryCounts map[string]int
	Started        time.Time
	Completed      time.Time
	Duration       time.Duration
}

// Importer загрузчик товаров в каталог
type Importer struct {
	store     catalog.Store
	converter *pricing.Converter
	opts      Options
}

// New создает импортер. В режиме DryRun store может быть nil —
// хранилище в этом режиме не используется.
func New(store catalog.Store, opts Options) *Importer {
	return &Importer{
		store:     store,
		converter: pricing.New(opts.Pricing),
		opts:      opts,
	}
}

// Run обрабатывает записи строго последовательно, в порядке листа.
// Отказ отдельной строки фиксируется в журнале и не прерывает батч;
// прогон всегда завершается итоговой сводкой.
func (im *Importer) Run(products []extractor.ProductRecord) (*Result, error) {
	result := &Result{
		Total:          len(products),
		CategoryCounts: make(map[string]int),
		Started:        time.Now(),
	}

	if im.opts.DryRun {
		log.Printf("DRY RUN MODE - no data will be imported")
	}

	for i, rec := range products {
		rowIndex := i + 1

		action, err := im.importRecord(rowIndex, rec, result)
		entry := LedgerEntry{RowIndex: rowIndex, Action: action}
		if err != nil {
			entry.Action = ActionFailed
			entry.Reason = err.Error()
			log.Printf("Product %d: %v", rowIndex, err)
		}
		result.Ledger = append(result.Ledger, entry)

		switch entry.Action {
		case ActionCreated:
			result.Created++
		case ActionUpdated:
			result.Updated++
		case ActionSkipped:
			result.Skipped++
		case ActionFailed:
			result.Failed++
		}

		if rowIndex%progressInterval == 0 {
			log.Printf("Processed %d/%d records (%.1f%%)",
				rowIndex, len(products), float64(rowIndex)/float64(len(products))*100)
		}
	}

	result.Completed = time.Now()
	result.Duration = result.Completed.Sub(result.Started)

	log.Printf("Import completed: %d created, %d updated, %d skipped, %d failed",
		result.Created, result.Updated, result.Skipped, result.Failed)
	return result, nil
}

// importRecord обрабатывает одну запись батча
func (im *Importer) importRecord(rowIndex int, rec extractor.ProductRecord, result *Result) (Action, error) {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		return ActionFailed, errors.New("missing product name")
	}
	if rec.SuggestedPrice <= 0 {
		return ActionFailed, fmt.Errorf("invalid price (%v)", rec.SuggestedPrice)
	}

	catResult := categorizer.Categorize(rec.Code, name, imageRefs(rec))
	result.CategoryCounts[catResult.Name]++

	price := im.converter.Convert(rec.SuggestedPrice)
	if price <= 0 {
		return ActionFailed, fmt.Errorf("price is not positive after conversion (%v)", rec.SuggestedPrice)
	}

	if im.opts.DryRun {
		log.Printf("Product %d: [DRY RUN] would import %q - category: %s (%s), price: %.2f",
			rowIndex, name, catResult.Name, catResult.LocalizedName, price)
		return ActionCreated, nil
	}

	categoryID, err := im.findOrCreateCategory(catResult.Category)
	if err != nil {
		return ActionFailed, fmt.Errorf("failed to resolve category %q: %w", catResult.Name, err)
	}

	sku := strings.TrimSpace(rec.Barcode)
	if sku == "" {
		sku = strings.TrimSpace(rec.Code)
	}

	existing, err := im.findExisting(sku, name)
	if err != nil {
		return ActionFailed, fmt.Errorf("failed to look up existing product: %w", err)
	}
	if existing != nil && !im.opts.Overwrite {
		log.Printf("Product %d: %q already exists, skipping", rowIndex, name)
		return ActionSkipped, nil
	}

	description, shortDescription := buildDescription(rec, name)
	product := &catalog.Product{
		Name:             name,
		Description:      description,
		ShortDescription: shortDescription,
		Price:            price,
		SKU:              sku,
		CategoryID:       categoryID,
		Images:           im.copyImages(rec, name),
		Stock:            rec.Quantity,
		Weight:           rec.WeightKg,
		Status:           "active",
	}

	if existing != nil {
		if err := im.store.UpdateProduct(existing.ID, product); err != nil {
			return ActionFailed, fmt.Errorf("failed to update product: %w", err)
		}
		return ActionUpdated, nil
	}
	if err := im.store.CreateProduct(product); err != nil {
		return ActionFailed, fmt.Errorf("failed to create product: %w", err)
	}
	return ActionCreated, nil
}

// findOrCreateCategory разрешает категорию по точному имени, создавая ее при
// отсутствии. Конфликт уникальности при создании (например, гонка по slug)
// разрешается повторным запросом, а при его неуспехе — одним созданием с
// дизамбигуированным именем. Ретраи ограничены, бесконечного цикла нет.
func (im *Importer) findOrCreateCategory(c categorizer.Category) (int64, error) {
	existing, err := im.store.FindCategoryByName(c.Name)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, catalog.ErrNotFound) {
		return 0, err
	}

	created := &catalog.Category{
		Name:        c.Name,
		Description: c.LocalizedName,
		IsActive:    true,
	}
	err = im.store.CreateCategory(created)
	if err == nil {
		log.Printf("Created new category: %s (%s)", c.Name, c.LocalizedName)
		return created.ID, nil
	}
	if !errors.Is(err, catalog.ErrConflict) {
		return 0, err
	}

	// Кто-то создал категорию между поиском и созданием
	if existing, err := im.store.FindCategoryByName(c.Name); err == nil {
		return existing.ID, nil
	}

	created = &catalog.Category{
		Name:        fmt.Sprintf("%s-%d", c.Name, time.Now().UnixMilli()),
		Description: c.LocalizedName,
		IsActive:    true,
	}
	if err := im.store.CreateCategory(created); err != nil {
		return 0, err
	}
	log.Printf("Created new category with disambiguated name: %s", created.Name)
	return created.ID, nil
}

// findExisting ищет существующий товар: по SKU, если он задан,
// иначе по точному имени. Отсутствие товара — не ошибка.
func (im *Importer) findExisting(sku, name string) (*catalog.Product, error) {
	if sku != "" {
		p, err := im.store.FindProductBySKU(sku)
		if err == nil {
			return p, nil
		}
		if !errors.Is(err, catalog.ErrNotFound) {
			return nil, err
		}
	}
	p, err := im.store.FindProductByName(name)
	if err == nil {
		return p, nil
	}
	if errors.Is(err, catalog.ErrNotFound) {
		return nil, nil
	}
	return nil, err
}

// copyImages переносит привязанные изображения из каталога извлечения в
// постоянное хранилище под свежими уникальными именами. Отсутствующий
// исходный файл логируется и пропускается: товар создается с меньшим числом
// изображений, а не отбраковывается.
func (im *Importer) copyImages(rec extractor.ProductRecord, name string) []catalog.ProductImage {
	var images []catalog.ProductImage
	for _, img := range rec.Images {
		src := im.resolveImagePath(img.Path)
		if src == "" {
			log.Printf("Warning: image file not found: %s", img.Path)
			continue
		}
		data, err := os.ReadFile(src)
		if err != nil {
			log.Printf("Warning: could not read image %s: %v", src, err)
			continue
		}
		ext := path.Ext(img.Filename)
		if ext == "" {
			ext = ".png"
		}
		url, err := im.store.PersistImageBytes(data, ext)
		if err != nil {
			log.Printf("Warning: could not persist image %s: %v", img.Filename, err)
			continue
		}
		images = append(images, catalog.ProductImage{URL: url, Alt: name})
	}
	return images
}

// resolveImagePath ищет файл изображения в каталогах-кандидатах
func (im *Importer) resolveImagePath(relPath string) string {
	for _, dir := range im.opts.SourceDirs {
		candidate := filepath.Join(dir, filepath.FromSlash(relPath))
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// buildDescription собирает описание карточки из характеристик и веса
func buildDescription(rec extractor.ProductRecord, name string) (description, shortDescription string) {
	var parts []string
	if spec := strings.TrimSpace(rec.Specification); spec != "" {
		parts = append(parts, "规格: "+spec)
	}
	if rec.WeightKg > 0 {
		parts = append(parts, fmt.Sprintf("重量: %v KG", rec.WeightKg))
	}

	description = name
	if len(parts) > 0 {
		description = strings.Join(parts, "\n")
	}

	shortDescription = strings.TrimSpace(rec.Specification)
	if shortDescription == "" {
		shortDescription = name
	}
	return description, shortDescription
}

func imageRefs(rec extractor.ProductRecord) []categorizer.ImageRef {
	refs := make([]categorizer.ImageRef, 0, len(rec.Images))
	for _, img := range rec.Images {
		refs = append(refs, categorizer.ImageRef{
			Filename:     img.Filename,
			OriginalPath: img.OriginalPath,
			Size:         img.Size,
		})
	}
	return refs
}
