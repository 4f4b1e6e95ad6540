package domain

import (
	"testing"
	"time"
)

func TestTimeframes_OrderAndDefault(t *testing.T) {
	got := Timeframes()
	want := []Timeframe{Timeframe24h, Timeframe7d, Timeframe30d}
	if len(got) != len(want) {
		t.Fatalf("Timeframes() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Timeframes()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if DefaultTimeframe != Timeframe7d {
		t.Errorf("DefaultTimeframe = %s, want 7d", DefaultTimeframe)
	}
}

func TestParseTimeframe(t *testing.T) {
	for _, s := range []string{"24h", "7d", "30d"} {
		if tf, err := ParseTimeframe(s); err != nil || string(tf) != s {
			t.Errorf("ParseTimeframe(%q) = %q, %v", s, tf, err)
		}
	}
	if _, err := ParseTimeframe("1y"); err == nil {
		t.Error("expected error for 1y")
	}
}

func TestTimeframe_Duration(t *testing.T) {
	tests := map[Timeframe]time.Duration{
		Timeframe24h: 24 * time.Hour,
		Timeframe7d:  168 * time.Hour,
		Timeframe30d: 720 * time.Hour,
		"bogus":      0,
	}
	for tf, want := range tests {
		if got := tf.Duration(); got != want {
			t.Errorf("%s.Duration() = %s, want %s", tf, got, want)
		}
	}
}

func TestTimeframe_NextPrevWrap(t *testing.T) {
	if Timeframe7d.Next() != Timeframe30d {
		t.Error("7d.Next should be 30d")
	}
	if Timeframe30d.Next() != Timeframe24h {
		t.Error("30d.Next should wrap to 24h")
	}
	if Timeframe24h.Prev() != Timeframe30d {
		t.Error("24h.Prev should wrap to 30d")
	}
	if Timeframe("bogus").Next() != DefaultTimeframe {
		t.Error("unknown timeframe should reset to default")
	}
}
