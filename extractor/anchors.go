package extractor

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// illustrationColumnMax изображения считаются привязанными к строке, только
// если их якорная колонка попадает в колонки иллюстраций (первая или вторая)
const illustrationColumnMax = 2

// ReadImageAnchors читает якоря изображений из слоя рисунков листа
// (позиционный режим). Индекс якоря соответствует порядку изображений в слое
// рисунков; координаты нормализованы к 1-based нумерации строк листа.
// Для большинства легаси выгрузок слой рисунков не содержит позиций —
// тогда возвращается пустой срез, а не ошибка.
//
// Индекс якоря используется сопоставлением как индекс в списке изображений,
// извлеченных из xl/media. Это опирается на инвариант формата выгрузки:
// книга содержит один лист с одним слоем рисунков, и генераторы записывают
// медиа-части в порядке ссылок слоя (image1, image2, ...), поэтому порядок
// слоя рисунков совпадает с порядком записей xl/media.
func ReadImageAnchors(filePath string) ([]ImageAnchor, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", filePath, err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in workbook %s", filePath)
	}

	cells, err := f.GetPictureCells(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read picture cells: %w", err)
	}

	var anchors []ImageAnchor
	for i, cellName := range cells {
		col, row, err := excelize.CellNameToCoordinates(cellName)
		if err != nil {
			continue
		}
		anchors = append(anchors, ImageAnchor{
			ImageIndex: i,
			Row:        row,
			Column:     col,
		})
	}

	return anchors, nil
}

// rowBound сообщает, привязывает ли якорь изображение к строке товара
func (a ImageAnchor) rowBound() bool {
	return a.Column >= 1 && a.Column <= illustrationColumnMax
}
