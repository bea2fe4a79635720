package importer

// Action итог обработки одной строки батча
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionSkipped Action = "skipped"
	ActionFailed  Action = "failed"
)

// LedgerEntry запись журнала импорта по одной строке. Журнал накапливается
// за весь батч и никогда не обрезается: отказ отдельной строки не прерывает
// прогон.
type LedgerEntry struct {
	RowIndex int    `json:"rowIndex"` // 1-based позиция записи в батче
	Action   Action `json:"action"`
	Reason   string `json:"reason,omitempty"`
}

// FailureReasons возвращает причины отказов, не более limit штук
func FailureReasons(ledger []LedgerEntry, limit int) []string {
	var reasons []string
	for _, entry := range ledger {
		if entry.Action != ActionFailed {
			continue
		}
		if len(reasons) >= limit {
			break
		}
		reasons = append(reasons, entry.Reason)
	}
	return reasons
}

// CountFailures считает общее число отказов в журнале
func CountFailures(ledger []LedgerEntry) int {
	n := 0
	for _, entry := range ledger {
		if entry.Action == ActionFailed {
			n++
		}
	}
	return n
}
