package pricing

import "testing"

func TestDiscountPercentTiers(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		want     int
	}{
		{"zero", 0, 0},
		{"below first tier", 12.99, 0},
		{"first tier floor", 13, 5},
		{"first tier ceiling", 19.99, 5},
		{"second tier floor", 20, 5},
		{"second tier step", 23, 6},
		{"second tier capped", 49.99, 10},
		{"third tier floor", 50, 10},
		{"third tier step", 55, 11},
		{"third tier capped", 99.99, 15},
		{"top tier floor", 100, 15},
		{"top tier step", 110, 16},
		{"just below cap", 199, 24},
		{"cap reached", 200, 25},
		{"far beyond cap", 1000, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DiscountPercent(tt.subtotal); got != tt.want {
				t.Errorf("DiscountPercent(%v) = %d, want %d", tt.subtotal, got, tt.want)
			}
		})
	}
}

func TestDiscountPercentMonotonic(t *testing.T) {
	prev := 0
	for subtotal := 0.0; subtotal <= 300; subtotal += 0.5 {
		got := DiscountPercent(subtotal)
		if got < prev {
			t.Fatalf("DiscountPercent(%v) = %d, less than %d at previous subtotal", subtotal, got, prev)
		}
		if got < 0 || got > 25 {
			t.Fatalf("DiscountPercent(%v) = %d, outside [0,25]", subtotal, got)
		}
		prev = got
	}
}

func TestResolvePriceID(t *testing.T) {
	id, ok := ResolvePriceID("Levitate")
	if !ok || id == "" {
		t.Errorf("expected Levitate to resolve, got %q, %v", id, ok)
	}

	if _, ok := ResolvePriceID("Nonexistent Product"); ok {
		t.Error("expected unknown name to miss")
	}
}
