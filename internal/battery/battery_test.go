package battery

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		millivolts int
		want       int
	}{
		{1500, 0},
		{2000, 0},
		{2057, 0},
		{2058, 1},
		{2400, 4},
		{2800, 7},
		{3300, 7},
	}
	for _, test := range tests {
		if got := Level(test.millivolts, 7); got != test.want {
			t.Errorf("Level(%d, 7) = %d, want %d", test.millivolts, got, test.want)
		}
	}
}

func TestGauge(t *testing.T) {
	tests := []struct {
		millivolts int
		mono       []uint8
		red        bool
	}{
		{1900, []uint8{15, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 15}, false},
		{2400, []uint8{15, 15, 15, 15, 15, 0, 0, 15, 15, 15, 15, 15}, false},
		{2700, []uint8{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}, false},
		{2800, []uint8{15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15}, true},
	}
	for _, test := range tests {
		mono, red := Gauge(test.millivolts, 12)
		if !bytes.Equal(mono, test.mono) || red != test.red {
			t.Errorf("Gauge(%d) = %v, %v, want %v, %v", test.millivolts, mono, red, test.mono, test.red)
		}
	}
}

type store struct{ levels []uint8 }

func (s *store) Store(levels []uint8) { s.levels = append([]uint8(nil), levels...) }

func TestShow(t *testing.T) {
	mono, rgb := &store{}, &store{}
	if err := Show(context.Background(), 2800, mono, rgb, 12, time.Millisecond); err != nil {
		t.Fatalf("Show: %v", err)
	}
	if len(mono.levels) != 12 || !bytes.Equal(rgb.levels, []uint8{15, 0, 0}) {
		t.Fatalf("mono %v rgb %v", mono.levels, rgb.levels)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Show(ctx, 2800, mono, nil, 12, time.Hour); err != context.Canceled {
		t.Fatalf("Show with canceled context = %v", err)
	}
}
