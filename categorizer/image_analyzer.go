package categorizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kljensen/snowball"
)

// ImageRef изображение товара, доступное движку категоризации. Размер
// берется из результата извлечения, чтобы анализ оставался чистой функцией
// своих входов и не трогал файловую систему.
type ImageRef struct {
	Filename     string // сохраненное имя файла
	OriginalPath string // исходный путь внутри контейнера
	Size         int64  // размер в байтах
}

const (
	// filenamePatternConfidence уверенность совпадения по имени/пути файла
	filenamePatternConfidence = 0.6
	// fileSizeConfidence уверенность эвристики по размеру файла
	fileSizeConfidence = 0.5
	// dollFileSizeThreshold фото кукол обычно заметно тяжелее остальных
	dollFileSizeThreshold = 500_000
	// corroborationBoost прибавка за каждое подтверждающее изображение.
	// Настроечная константа: подбиралась на реальных выгрузках.
	corroborationBoost = 0.1
	// maxCombinedConfidence потолок комбинированной уверенности
	maxCombinedConfidence = 0.9
)

// imageAnalysis результат анализа одного изображения
type imageAnalysis struct {
	category   Category
	confidence float64
	method     string
}

// imagePattern ключевые шаблоны имени/пути файла для одной категории
type imagePattern struct {
	category Category
	patterns []*regexp.Regexp
	// английские ключевые слова для сопоставления по стеммам токенов
	// (ловит формы множественного числа: dolls, stockings, tests)
	stemWords []string
}

var imagePatterns = []imagePattern{
	{CategoryCondoms,
		compileAll(`condom`, `套`, `durex`, `double.?one`, `双一`, `momo`, `陌陌`),
		[]string{"condom", "durex"}},
	{CategoryLubricants,
		compileAll(`lubricant`, `润滑`, `lube`),
		[]string{"lubricant", "lube"}},
	{CategoryFemaleToys,
		compileAll(`vibrator`, `跳蛋`, `震动`, `女用`, `av棒`, `按摩棒`, `vibe`),
		[]string{"vibrator", "vibe"}},
	{CategoryMaleToys,
		compileAll(`masturbator`, `飞机杯`, `名器`, `男用`, `cup`),
		[]string{"masturbator", "cup"}},
	{CategoryLingerie,
		compileAll(`lingerie`, `内衣`, `丝袜`, `制服`, `旗袍`, `stocking`, `sock`, `bra`, `pantie`, `clothing`, `clothes`),
		[]string{"lingerie", "stocking", "sock", "pantie", "clothing"}},
	{CategoryBDSM,
		compileAll(`bdsm`, `\bsm\b`, `束缚`, `调教`, `toy`, `accessory`),
		[]string{"bdsm", "toy", "accessory"}},
	{CategoryDolls,
		compileAll(`doll`, `娃娃`, `充气`, `实体`, `figure`, `realdoll`),
		[]string{"doll", "figure", "realdoll"}},
	{CategoryHealth,
		compileAll(`test`, `测试`, `health`, `care`, `pregnant`, `怀孕`),
		[]string{"test", "health", "care", "pregnant"}},
	{CategoryAccessories,
		compileAll(`accessory`, `配件`, `plug`, `anal`, `other`),
		[]string{"accessory", "plug", "other"}},
}

// dollNamePattern названия товаров, для которых тяжелый файл означает куклу
var dollNamePattern = regexp.MustCompile(`(?i)doll|娃娃|充气|实体`)

var tokenSplitter = regexp.MustCompile(`[^a-z]+`)

func compileAll(exprs ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(exprs))
	for _, expr := range exprs {
		patterns = append(patterns, regexp.MustCompile(expr))
	}
	return patterns
}

// analyzeImage предлагает категорию по имени и пути файла изображения.
// Возвращает nil, если ни один шаблон не сработал и эвристика размера
// неприменима.
func analyzeImage(img ImageRef, productName string) *imageAnalysis {
	filename := strings.ToLower(img.Filename)
	originalPath := strings.ToLower(img.OriginalPath)

	for _, entry := range imagePatterns {
		for _, pattern := range entry.patterns {
			if pattern.MatchString(filename) || pattern.MatchString(originalPath) {
				return &imageAnalysis{entry.category, filenamePatternConfidence, "filename_pattern"}
			}
		}
	}

	// Второй проход — по стеммам латинских токенов
	tokens := stemTokens(filename + " " + originalPath)
	for _, entry := range imagePatterns {
		for _, word := range entry.stemWords {
			if tokens[stemWord(word)] {
				return &imageAnalysis{entry.category, filenamePatternConfidence, "filename_pattern"}
			}
		}
	}

	if img.Size > dollFileSizeThreshold && dollNamePattern.MatchString(productName) {
		return &imageAnalysis{CategoryDolls, fileSizeConfidence, "file_size_heuristic"}
	}

	return nil
}

func stemTokens(text string) map[string]bool {
	tokens := map[string]bool{}
	for _, token := range tokenSplitter.Split(text, -1) {
		if token == "" {
			continue
		}
		tokens[stemWord(token)] = true
	}
	return tokens
}

func stemWord(word string) string {
	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil {
		return word
	}
	return stemmed
}

// combineImageAnalyses сводит результаты по нескольким изображениям:
// группировка по категории, оценка группы count×avgConfidence, победившая
// группа получает прибавку уверенности за каждое подтверждающее изображение
// с потолком maxCombinedConfidence.
//
// Группы обходятся в порядке первого появления категории: при равенстве
// оценок побеждает категория, предложенная более ранним изображением.
// Обход через map дал бы случайного победителя при ничьей.
func combineImageAnalyses(analyses []*imageAnalysis) *Result {
	type group struct {
		category        Category
		count           int
		totalConfidence float64
	}
	var groups []*group
	index := map[string]*group{}
	for _, analysis := range analyses {
		if analysis == nil {
			continue
		}
		g, ok := index[analysis.category.Name]
		if !ok {
			g = &group{category: analysis.category}
			index[analysis.category.Name] = g
			groups = append(groups, g)
		}
		g.count++
		g.totalConfidence += analysis.confidence
	}
	if len(groups) == 0 {
		return nil
	}

	var best *Result
	bestScore := 0.0
	for _, g := range groups {
		avg := g.totalConfidence / float64(g.count)
		score := float64(g.count) * avg
		if score > bestScore {
			bestScore = score
			confidence := avg + float64(g.count-1)*corroborationBoost
			if confidence > maxCombinedConfidence {
				confidence = maxCombinedConfidence
			}
			best = &Result{
				Category:   g.category,
				Confidence: confidence,
				Method:     fmt.Sprintf("image_analysis (%d images)", g.count),
			}
		}
	}
	return best
}
