// Package pricing конвертирует цены из валюты поставщика в валюту витрины
// по фиксированному курсу с настраиваемым округлением.
package pricing

import "math"

// Config параметры конвертации. Передается явно, а не через глобальный
// курс: так прогон с другим курсом полностью детерминирован.
type Config struct {
	// Rate курс: единица исходной валюты в целевой
	Rate float64
	// WholeUnit округлять до целых единиц целевой валюты;
	// иначе до двух знаков
	WholeUnit bool
}

// Converter конвертер цен с фиксированной конфигурацией
type Converter struct {
	cfg Config
}

// New создает конвертер. Курс проверяется при каждой конвертации:
// невалидная конфигурация дает нулевые цены, а не панику посреди батча.
func New(cfg Config) *Converter {
	return &Converter{cfg: cfg}
}

// Convert переводит сумму в целевую валюту. Нечисловая или неположительная
// сумма дает 0 — строку с такой ценой отбраковывает импортер, конвертер
// не прерывает батч.
func (c *Converter) Convert(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0
	}
	if math.IsNaN(c.cfg.Rate) || c.cfg.Rate <= 0 {
		return 0
	}

	converted := amount * c.cfg.Rate
	if c.cfg.WholeUnit {
		return math.Round(converted)
	}
	return math.Round(converted*100) / 100
}
