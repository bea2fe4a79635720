package categorizer

import (
	"reflect"
	"testing"
)

// TestCategorize_CodeRulesAuthoritative правило по артикулу побеждает даже
// когда название содержит ключевые слова другой категории
func TestCategorize_CodeRulesAuthoritative(t *testing.T) {
	// Название про куклу, артикул серии презервативов
	result := Categorize("T-A-003", "豪华实体娃娃", nil)

	if result.Name != CategoryCondoms.Name {
		t.Errorf("Categorize(T-A-003) category = %s, want %s", result.Name, CategoryCondoms.Name)
	}
	if result.Method != "code_pattern" {
		t.Errorf("Categorize(T-A-003) method = %s, want code_pattern", result.Method)
	}
}

// TestCategorize_CodeRanges проверяет разложение серий по диапазонам
func TestCategorize_CodeRanges(t *testing.T) {
	tests := []struct {
		code string
		want Category
	}{
		{"T-A-003", CategoryCondoms},
		{"T-D-120", CategoryCondoms},
		{"R-E-010", CategoryLubricants},
		{"R-F-002", CategoryLubricants},
		{"N-G-055", CategoryFemaleToys},
		{"N-H-150", CategoryFemaleToys},
		{"N-H-179", CategoryFemaleToys},
		{"N-H-180", CategoryLingerie},
		{"N-H-439", CategoryLingerie},
		{"N-H-440", CategoryBDSM},
		{"N-H-460", CategoryBDSM},
		{"N-H-495", CategoryBDSM},
		{"N-H-520", CategoryLingerie},
		{"N-H-560", CategoryLingerie},
		{"N-H-603", CategoryAccessories},
		{"N-H-700", CategoryLingerie},
		{"G-J-001", CategoryDolls},
		{"Q-N-003", CategoryHealth},
		{"Q-N-010", CategoryCondoms},
		{"Q-N-019.3", CategoryCondoms},
		{"Q-N-021", CategoryMaleToys},
		{"Q-N-023", CategoryCondoms},
		{"Q-N-024.1", CategoryMaleToys},
	}

	for _, tt := range tests {
		result := Categorize(tt.code, "测试商品", nil)
		if result.Name != tt.want.Name {
			t.Errorf("Categorize(%s) = %s, want %s", tt.code, result.Name, tt.want.Name)
		}
		if result.LocalizedName != tt.want.LocalizedName {
			t.Errorf("Categorize(%s) localized = %s, want %s", tt.code, result.LocalizedName, tt.want.LocalizedName)
		}
	}
}

// TestCategorize_UnassignedRangeFallsThrough диапазон N-H-496..499 не
// закреплен в схеме нумерации: такие артикулы уходят в правила по названию
func TestCategorize_UnassignedRangeFallsThrough(t *testing.T) {
	result := Categorize("N-H-497", "水果味润滑液", nil)

	if result.Name != CategoryLubricants.Name {
		t.Errorf("Categorize(N-H-497) = %s, want %s", result.Name, CategoryLubricants.Name)
	}
	if result.Method != "name_keyword" {
		t.Errorf("Categorize(N-H-497) method = %s, want name_keyword", result.Method)
	}
}

// TestCategorize_FullWidthCode полноширинные символы легаси выгрузок
// нормализуются перед сопоставлением
func TestCategorize_FullWidthCode(t *testing.T) {
	result := Categorize("Ｔ－Ａ－００３", "测试商品", nil)

	if result.Name != CategoryCondoms.Name {
		t.Errorf("Categorize(full-width T-A-003) = %s, want %s", result.Name, CategoryCondoms.Name)
	}
}

// TestCategorize_LowerCaseCode регистр артикула не важен
func TestCategorize_LowerCaseCode(t *testing.T) {
	result := Categorize("n-h-460", "测试商品", nil)

	if result.Name != CategoryBDSM.Name {
		t.Errorf("Categorize(n-h-460) = %s, want %s", result.Name, CategoryBDSM.Name)
	}
}

// TestCategorize_NameKeywords без артикула работает сопоставление по названию
func TestCategorize_NameKeywords(t *testing.T) {
	tests := []struct {
		name string
		want Category
	}{
		{"黑色蕾丝内衣", CategoryLingerie},
		{"情趣内衣套装", CategoryLingerie}, // белье раньше BDSM, хотя 情趣 есть в обоих
		{"水果味润滑液", CategoryLubricants},
		{"durex classic 10只装", CategoryCondoms},
		{"USB充电跳蛋", CategoryFemaleToys},
		{"飞机杯至尊版", CategoryMaleToys},
	}

	for _, tt := range tests {
		result := Categorize("", tt.name, nil)
		if result.Name != tt.want.Name {
			t.Errorf("Categorize(%q) = %s, want %s", tt.name, result.Name, tt.want.Name)
		}
	}
}

// TestCategorize_DefaultCategory название без ключевых слов получает
// терминальную категорию
func TestCategorize_DefaultCategory(t *testing.T) {
	result := Categorize("", "某种未知商品", nil)

	if result.Name != CategoryAccessories.Name {
		t.Errorf("Categorize(unknown) = %s, want %s", result.Name, CategoryAccessories.Name)
	}
	if result.Method != "default" {
		t.Errorf("Categorize(unknown) method = %s, want default", result.Method)
	}
	if result.LocalizedName != CategoryAccessories.LocalizedName {
		t.Errorf("Categorize(unknown) localized = %s, want %s", result.LocalizedName, CategoryAccessories.LocalizedName)
	}
}

// TestCategorize_Deterministic повторный вызов с теми же входами дает
// идентичный результат
func TestCategorize_Deterministic(t *testing.T) {
	images := []ImageRef{
		{Filename: "vibrator_pink.jpg", OriginalPath: "xl/media/image7.jpg", Size: 42000},
		{Filename: "product-12345.jpg", OriginalPath: "xl/media/image8.jpg", Size: 700000},
	}

	first := Categorize("N-H-497", "神秘商品", images)
	second := Categorize("N-H-497", "神秘商品", images)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Categorize is not deterministic: %+v != %+v", first, second)
	}
}

// TestCategorize_EmptyInputs пустые входы всегда дают категорию по умолчанию
func TestCategorize_EmptyInputs(t *testing.T) {
	result := Categorize("", "", nil)

	if result.Name != CategoryAccessories.Name {
		t.Errorf("Categorize(empty) = %s, want %s", result.Name, CategoryAccessories.Name)
	}
}
