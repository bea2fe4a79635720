package extractor

// MatchImagesToRows строит соответствие изображений и товарных строк.
//
// Приоритет для каждой строки:
//  1. Якорь с совпадающим номером строки листа в колонке иллюстраций —
//     привязывается первое такое изображение.
//  2. Если якорей нет вообще (обычный случай для этого формата) —
//     порядковое выравнивание: i-я выжившая товарная строка получает i-е
//     извлеченное изображение, пока индексы не выходят за границы.
//  3. Иначе (якоря есть, но не для этой строки) строка остается без
//     изображения — угадывать опаснее, чем оставить пусто.
//
// Строк может быть больше, чем изображений; строка без изображения — не
// ошибка.
func MatchImagesToRows(rows []RawRow, images []ExtractedImage, anchors []ImageAnchor) []MatchedProduct {
	matched := make([]MatchedProduct, 0, len(rows))

	if len(anchors) == 0 {
		// Порядковое выравнивание: строки и изображения заполнялись
		// сверху вниз в одном и том же порядке.
		for i, row := range rows {
			product := MatchedProduct{Row: row}
			if i < len(images) {
				product.Images = []ExtractedImage{images[i]}
			}
			matched = append(matched, product)
		}
		return matched
	}

	// Якорный режим: первое изображение, заякоренное в колонке иллюстраций
	// на строке товара, побеждает. Остальные строки остаются пустыми.
	imageByRow := make(map[int]ExtractedImage)
	for _, anchor := range anchors {
		if !anchor.rowBound() {
			continue
		}
		if _, ok := imageByRow[anchor.Row]; ok {
			continue
		}
		if anchor.ImageIndex < 0 || anchor.ImageIndex >= len(images) {
			continue
		}
		imageByRow[anchor.Row] = images[anchor.ImageIndex]
	}

	for _, row := range rows {
		product := MatchedProduct{Row: row}
		if img, ok := imageByRow[row.SheetRowNumber]; ok {
			product.Images = []ExtractedImage{img}
		}
		matched = append(matched, product)
	}
	return matched
}
