package extractor

// RawRow одна строка прайс-листа до каких-либо преобразований.
// Числовые поля приводятся из текста ячеек; нечитаемое значение становится 0.
type RawRow struct {
	Code           string  // артикул (序号), может кодировать категорию
	Name           string  // название товара (名称), обязательно для товарной строки
	Specification  string  // характеристики (规格)
	Unit           string  // единица измерения (单位)
	CostPrice      float64 // закупочная цена (价格)
	SuggestedPrice float64 // рекомендованная цена (建议价)
	Quantity       int     // количество (数量)
	Barcode        string  // штрихкод (条码)
	WeightKg       float64 // вес в килограммах (重量KG)
	SheetRowNumber int     // номер строки листа, 1-based
}

// ExtractedImage одно изображение, извлеченное из медиа-каталога контейнера.
// После создания не изменяется.
type ExtractedImage struct {
	Index        int    // порядковый номер в контейнере, 0-based
	OriginalPath string // путь внутри контейнера (xl/media/...)
	Filename     string // сгенерированное уникальное имя файла
	Path         string // путь относительно каталога извлечения
	Size         int64  // размер в байтах
}

// ImageAnchor позиция изображения в листе по данным слоя рисунков.
// Доступна только в позиционном режиме чтения; для большинства легаси
// выгрузок метаданные позиций отсутствуют целиком.
type ImageAnchor struct {
	ImageIndex int // индекс изображения в порядке слоя рисунков
	Row        int // строка листа, 1-based
	Column     int // колонка листа, 1-based
}

// MatchedProduct строка товара с привязанными к ней изображениями (0 и более)
type MatchedProduct struct {
	Row    RawRow
	Images []ExtractedImage
}

// ImageRecord описание изображения в JSON-артефакте извлечения
type ImageRecord struct {
	Filename     string `json:"filename"`
	Path         string `json:"path"`
	OriginalPath string `json:"originalPath"`
	Size         int64  `json:"size"`
}

// ProductRecord запись товара в JSON-артефакте извлечения. Формат артефакта
// стабилен: импорт может выполняться отдельно и повторно по ранее
// сохраненному результату извлечения.
type ProductRecord struct {
	Code           string        `json:"code"`
	Name           string        `json:"name"`
	Specification  string        `json:"specification"`
	Unit           string        `json:"unit"`
	CostPrice      float64       `json:"costPrice"`
	SuggestedPrice float64       `json:"suggestedPrice"`
	Quantity       int           `json:"quantity"`
	Barcode        string        `json:"barcode"`
	WeightKg       float64       `json:"weightKg"`
	SheetRowNumber int           `json:"sheetRowNumber"`
	Images         []ImageRecord `json:"images"`
}

// Summary итог одного прогона извлечения
type Summary struct {
	TotalProducts      int    `json:"totalProducts"`
	TotalImages        int    `json:"totalImages"`
	ProductsWithImages int    `json:"productsWithImages"`
	ExtractionDate     string `json:"extractionDate"`
}
