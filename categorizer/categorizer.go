// Package categorizer реализует детерминированный каскад правил
// классификации товара: артикул → изображения → ключевые слова названия →
// категория по умолчанию. Каскад обрывается на первом уверенном совпадении;
// правило по артикулу авторитетно и не допускает отката.
package categorizer

import (
	"strings"

	"golang.org/x/text/width"
)

// ImageConfidenceThreshold минимальная комбинированная уверенность, при
// которой результат анализа изображений принимается вместо правил по названию
const ImageConfidenceThreshold = 0.6

// Result результат классификации. Уверенность заполняется только ветвью
// анализа изображений; методы правил по артикулу и названию детерминированы
// и в оценке не нуждаются.
type Result struct {
	Category
	Confidence float64
	Method     string
}

// Categorize определяет категорию товара по артикулу, названию и
// изображениям. Функция чиста относительно своих входов: повторный вызов с
// теми же аргументами дает идентичный результат.
func Categorize(code, name string, images []ImageRef) Result {
	// Легаси выгрузки содержат полноширинные латинские символы и цифры —
	// приводим артикул к обычной ширине перед сопоставлением
	normalizedCode := strings.ToUpper(strings.TrimSpace(width.Narrow.String(code)))

	if category, ok := matchCodeRules(normalizedCode); ok {
		return Result{Category: category, Method: "code_pattern"}
	}

	if combined := analyzeImages(images, name); combined != nil && combined.Confidence >= ImageConfidenceThreshold {
		return *combined
	}

	return matchNameRules(name)
}

// analyzeImages анализирует все изображения товара и сводит результаты
func analyzeImages(images []ImageRef, productName string) *Result {
	if len(images) == 0 {
		return nil
	}
	analyses := make([]*imageAnalysis, 0, len(images))
	for _, img := range images {
		if analysis := analyzeImage(img, productName); analysis != nil {
			analyses = append(analyses, analysis)
		}
	}
	return combineImageAnalyses(analyses)
}

// matchNameRules проверяет название против ключевых слов категорий в порядке
// списка. Название сравнивается без учета регистра и, отдельно, с учетом —
// для письменностей без регистровых пар. Терминальное правило без ключевых
// слов гарантирует результат.
func matchNameRules(name string) Result {
	nameLower := strings.ToLower(name)
	for _, rule := range nameRules {
		if len(rule.keywords) == 0 {
			return Result{Category: rule.category, Method: "default"}
		}
		for _, keyword := range rule.keywords {
			if strings.Contains(nameLower, strings.ToLower(keyword)) || strings.Contains(name, keyword) {
				return Result{Category: rule.category, Method: "name_keyword"}
			}
		}
	}
	// Недостижимо: список правил завершается терминальной записью
	return Result{Category: CategoryAccessories, Method: "default"}
}
