package pricing

import (
	"math"
	"testing"
)

// TestConvert_WholeUnitRounding проверяет округление до целых единиц
func TestConvert_WholeUnitRounding(t *testing.T) {
	c := New(Config{Rate: 0.58, WholeUnit: true})

	if got := c.Convert(50); got != 29 {
		t.Errorf("Convert(50) = %v, want 29", got)
	}
	if got := c.Convert(100); got != 58 {
		t.Errorf("Convert(100) = %v, want 58", got)
	}
	// 2.5 * 0.58 = 1.45 -> 1
	if got := c.Convert(2.5); got != 1 {
		t.Errorf("Convert(2.5) = %v, want 1", got)
	}
}

// TestConvert_TwoDecimalRounding проверяет округление до двух знаков
func TestConvert_TwoDecimalRounding(t *testing.T) {
	c := New(Config{Rate: 0.66, WholeUnit: false})

	if got := c.Convert(10.5); got != 6.93 {
		t.Errorf("Convert(10.5) = %v, want 6.93", got)
	}
	if got := c.Convert(1); got != 0.66 {
		t.Errorf("Convert(1) = %v, want 0.66", got)
	}
}

// TestConvert_NonPositiveInput невалидная сумма всегда дает 0
func TestConvert_NonPositiveInput(t *testing.T) {
	c := New(Config{Rate: 0.58, WholeUnit: true})

	for _, amount := range []float64{0, -5, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := c.Convert(amount); got != 0 {
			t.Errorf("Convert(%v) = %v, want 0", amount, got)
		}
	}
}

// TestConvert_InvalidRate невалидный курс дает нулевые цены, а не панику
func TestConvert_InvalidRate(t *testing.T) {
	for _, rate := range []float64{0, -1, math.NaN()} {
		c := New(Config{Rate: rate, WholeUnit: true})
		if got := c.Convert(50); got != 0 {
			t.Errorf("Convert(50) with rate %v = %v, want 0", rate, got)
		}
	}
}

// TestConvert_Monotonic большая сумма не дает меньшую цену
func TestConvert_Monotonic(t *testing.T) {
	c := New(Config{Rate: 0.58, WholeUnit: true})

	prev := 0.0
	for _, amount := range []float64{1, 10, 50, 100, 500, 1000} {
		got := c.Convert(amount)
		if got < prev {
			t.Errorf("Convert(%v) = %v, less than previous %v", amount, got, prev)
		}
		prev = got
	}
}
