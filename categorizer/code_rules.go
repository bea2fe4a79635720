package categorizer

import (
	"regexp"
	"strconv"
)

// codeRule одно правило сопоставления по артикулу: шаблон префикса плюс
// резолвер числового диапазона. Резолвер может отказаться (ok=false), и
// тогда каскад продолжается со следующего правила.
type codeRule struct {
	pattern *regexp.Regexp
	resolve func(groups []string) (Category, bool)
}

func always(c Category) func([]string) (Category, bool) {
	return func([]string) (Category, bool) { return c, true }
}

// codeRules правила по артикулу в фиксированном порядке приоритета:
// более специфичные префиксы проверяются раньше общих, первое сработавшее
// правило окончательно. Диапазоны взяты из принятой на складе схемы
// нумерации серий.
var codeRules = []codeRule{
	// T-A..T-D — презервативы
	{regexp.MustCompile(`^T-[A-D]`), always(CategoryCondoms)},
	// R-E, R-F — смазки
	{regexp.MustCompile(`^R-[EF]`), always(CategoryLubricants)},
	// N-G — вибраторы целиком
	{regexp.MustCompile(`^N-G-[0-9]+$`), always(CategoryFemaleToys)},
	// N-H — категория зависит от числового поддиапазона
	{regexp.MustCompile(`^N-H-([0-9]+)$`), resolveNHRange},
	// G-I..G-M — куклы
	{regexp.MustCompile(`^G-[I-M]`), always(CategoryDolls)},
	// Q-N-001..004 — тесты на беременность
	{regexp.MustCompile(`^Q-N-00[1-4]$`), always(CategoryHealth)},
	// Q-N-005..019 (возможен десятичный суффикс) — презервативы
	{regexp.MustCompile(`^Q-N-0([0-9]+)(\.[0-9]+)?$`), resolveQNCondomRange},
	// Q-N-020..022 — мужские насадки
	{regexp.MustCompile(`^Q-N-02[0-2]$`), always(CategoryMaleToys)},
	{regexp.MustCompile(`^Q-N-023$`), always(CategoryCondoms)},
	{regexp.MustCompile(`^Q-N-024`), always(CategoryMaleToys)},
}

// resolveNHRange раскладывает серию N-H по числовым поддиапазонам.
// Диапазон 496..499 в схеме нумерации не закреплен — такие артикулы
// передаются дальше по каскаду.
func resolveNHRange(groups []string) (Category, bool) {
	num, err := strconv.Atoi(groups[1])
	if err != nil {
		return Category{}, false
	}
	switch {
	case num <= 179:
		return CategoryFemaleToys, true
	case num >= 440 && num <= 495:
		return CategoryBDSM, true
	case num >= 500 && num <= 549:
		return CategoryLingerie, true
	case num >= 600 && num <= 606:
		return CategoryAccessories, true
	case num >= 180 && num < 440:
		return CategoryLingerie, true
	case num >= 550 && num < 600:
		return CategoryLingerie, true
	case num >= 607:
		return CategoryLingerie, true
	}
	return Category{}, false
}

// resolveQNCondomRange принимает только номера 5..19 серии Q-N
func resolveQNCondomRange(groups []string) (Category, bool) {
	num, err := strconv.Atoi(groups[1])
	if err != nil {
		return Category{}, false
	}
	if num >= 5 && num <= 19 {
		return CategoryCondoms, true
	}
	return Category{}, false
}

// matchCodeRules прогоняет артикул по правилам; первое совпадение побеждает
func matchCodeRules(code string) (Category, bool) {
	if code == "" {
		return Category{}, false
	}
	for _, rule := range codeRules {
		groups := rule.pattern.FindStringSubmatch(code)
		if groups == nil {
			continue
		}
		if category, ok := rule.resolve(groups); ok {
			return category, true
		}
	}
	return Category{}, false
}
