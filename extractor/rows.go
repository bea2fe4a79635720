package extractor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Заголовочные подписи легаси прайс-листа. Первая строка листа — баннер
// распределительного центра, вторая — строка подписей колонок.
const (
	bannerCaption = "配货中心" // баннер первой строки
	codeCaption   = "序号"   // подпись колонки артикула
	nameCaption   = "名称"   // подпись колонки названия
)

// Позиции колонок значения (0-based) в листе прайс-листа
const (
	colCode = iota
	colName
	colBatteryModel
	colUnit
	colCostPrice
	colQuantity
	colSpecification
	colAmount
	colSuggestedPrice
	colMarketValue
	colBarcode
	colWeightKg
)

// ReadRows читает товарные строки первого листа книги (режим значений).
// Пропускаются ровно две структурные строки заголовка и все строки без
// названия. Нечитаемые числовые ячейки становятся нулями: батч важнее
// отдельной испорченной ячейки.
func ReadRows(filePath string) ([]RawRow, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filePath, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in workbook %s", filePath)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %w", err)
	}

	var result []RawRow
	for i, row := range rows {
		sheetRow := i + 1

		if isHeaderRow(i, row) {
			continue
		}

		name := strings.TrimSpace(cell(row, colName))
		if !isProductName(name) {
			continue
		}

		result = append(result, RawRow{
			Code:           strings.TrimSpace(cell(row, colCode)),
			Name:           name,
			Specification:  strings.TrimSpace(cell(row, colSpecification)),
			Unit:           strings.TrimSpace(cell(row, colUnit)),
			CostPrice:      parseFloat(cell(row, colCostPrice)),
			SuggestedPrice: parseFloat(cell(row, colSuggestedPrice)),
			Quantity:       parseInt(cell(row, colQuantity)),
			Barcode:        strings.TrimSpace(cell(row, colBarcode)),
			WeightKg:       parseFloat(cell(row, colWeightKg)),
			SheetRowNumber: sheetRow,
		})
	}

	return result, nil
}

// isHeaderRow определяет две структурные строки заголовка: баннер в первой
// строке и строку подписей колонок, узнаваемую по подписи в первой ячейке.
func isHeaderRow(index int, row []string) bool {
	if index == 0 && rowContains(row, bannerCaption) {
		return true
	}
	if index == 1 && strings.TrimSpace(cell(row, colCode)) == codeCaption {
		return true
	}
	return false
}

// isProductName строка является товарной тогда и только тогда, когда имя
// непусто после обрезки и само не выглядит как подпись заголовка.
func isProductName(name string) bool {
	if name == "" {
		return false
	}
	if name == nameCaption || name == codeCaption {
		return false
	}
	return !strings.Contains(name, bannerCaption)
}

func rowContains(row []string, substr string) bool {
	for _, c := range row {
		if strings.Contains(c, substr) {
			return true
		}
	}
	return false
}

func cell(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}

func parseFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseInt(raw string) int {
	raw = strings.TrimSpace(raw)
	if v, err := strconv.Atoi(raw); err == nil {
		return v
	}
	// Количество иногда выгружается как "12.0"
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(v)
	}
	return 0
}
