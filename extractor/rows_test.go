package extractor

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeTestWorkbook создает книгу со структурой легаси прайс-листа:
// баннер, строка подписей колонок и товарные строки
func writeTestWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i, row := range rows {
		cellName, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("Failed to build cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cellName, &row); err != nil {
			t.Fatalf("Failed to set row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(t.TempDir(), "pricelist.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test workbook: %v", err)
	}
	return path
}

func headerRows() [][]interface{} {
	return [][]interface{}{
		{"XX配货中心最新全品类报价单"},
		{"序号", "名称", "电池型号", "单位", "价格", "数量", "规格", "金额", "建议价", "市值", "条码", "重量KG"},
	}
}

// TestReadRows_SkipsHeaderAndParsesFields две структурные строки заголовка
// пропускаются, значения ячеек разбираются по колонкам
func TestReadRows_SkipsHeaderAndParsesFields(t *testing.T) {
	sheetRows := append(headerRows(),
		[]interface{}{"T-A-003", "Foo", "", "盒", "30", "12", "大号", "360", "50", "80", "6901234567890", "0.05"},
		[]interface{}{"N-H-150", "Bar", "", "个", "", "", "", "", "88.5", "", "", ""},
	)
	path := writeTestWorkbook(t, sheetRows)

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("ReadRows() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	first := rows[0]
	if first.Code != "T-A-003" || first.Name != "Foo" {
		t.Errorf("first row = %+v, want code T-A-003 name Foo", first)
	}
	if first.CostPrice != 30 || first.SuggestedPrice != 50 {
		t.Errorf("first row prices = %v/%v, want 30/50", first.CostPrice, first.SuggestedPrice)
	}
	if first.Quantity != 12 || first.WeightKg != 0.05 {
		t.Errorf("first row quantity/weight = %v/%v, want 12/0.05", first.Quantity, first.WeightKg)
	}
	if first.Specification != "大号" || first.Unit != "盒" || first.Barcode != "6901234567890" {
		t.Errorf("first row text fields = %+v", first)
	}
	if first.SheetRowNumber != 3 {
		t.Errorf("first row SheetRowNumber = %d, want 3", first.SheetRowNumber)
	}

	if rows[1].SuggestedPrice != 88.5 || rows[1].SheetRowNumber != 4 {
		t.Errorf("second row = %+v, want price 88.5 at sheet row 4", rows[1])
	}
}

// TestReadRows_DiscardsRowsWithoutName строки без названия не являются
// товарными и отбрасываются до всех остальных стадий
func TestReadRows_DiscardsRowsWithoutName(t *testing.T) {
	sheetRows := append(headerRows(),
		[]interface{}{"T-A-003", "Foo", "", "", "", "", "", "", "50"},
		[]interface{}{"X-1", "", "", "", "", "", "", "", "10"},
		[]interface{}{"X-2", "   ", "", "", "", "", "", "", "10"},
		[]interface{}{"N-G-001", "Baz", "", "", "", "", "", "", "20"},
	)
	path := writeTestWorkbook(t, sheetRows)

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("ReadRows() error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].Name != "Foo" || rows[1].Name != "Baz" {
		t.Errorf("surviving rows = %q, %q, want Foo, Baz", rows[0].Name, rows[1].Name)
	}
}

// TestReadRows_UnparsableNumbersBecomeZero испорченная числовая ячейка
// дает 0, а не ошибку: батч важнее отдельной ячейки
func TestReadRows_UnparsableNumbersBecomeZero(t *testing.T) {
	sheetRows := append(headerRows(),
		[]interface{}{"T-A-003", "Foo", "", "", "abc", "x2", "", "", "见备注", "", "", "未知"},
	)
	path := writeTestWorkbook(t, sheetRows)

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("ReadRows() error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	row := rows[0]
	if row.CostPrice != 0 || row.SuggestedPrice != 0 || row.Quantity != 0 || row.WeightKg != 0 {
		t.Errorf("unparsable numeric fields = %+v, want zeros", row)
	}
}

// TestReadRows_CaptionLikeNameExcluded название, совпадающее с подписью
// заголовка, не считается товаром
func TestReadRows_CaptionLikeNameExcluded(t *testing.T) {
	sheetRows := append(headerRows(),
		[]interface{}{"", "名称", "", "", "", "", "", "", ""},
		[]interface{}{"T-A-003", "Foo", "", "", "", "", "", "", "50"},
	)
	path := writeTestWorkbook(t, sheetRows)

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("ReadRows() error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Foo" {
		t.Fatalf("rows = %+v, want single Foo row", rows)
	}
}

// TestReadRows_MissingFile нечитаемый контейнер — фатальная ошибка
func TestReadRows_MissingFile(t *testing.T) {
	if _, err := ReadRows(filepath.Join(t.TempDir(), "nonexistent.xlsx")); err == nil {
		t.Error("ReadRows() should return error for nonexistent file")
	}
}
