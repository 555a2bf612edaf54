package widgets_test

import (
	"testing"

	"github.com/deevus/sensordash/widgets"
)

func TestSparkline_New(t *testing.T) {
	sl := widgets.NewSparkline(60)
	if sl.Count() != 0 {
		t.Errorf("expected count=0, got %d", sl.Count())
	}
	if sl.Values() != nil {
		t.Errorf("expected no values, got %v", sl.Values())
	}
}

func TestSparkline_Push(t *testing.T) {
	sl := widgets.NewSparkline(5)
	sl.Push(10)
	sl.Push(20)
	sl.Push(30)
	if sl.Count() != 3 {
		t.Errorf("expected count=3, got %d", sl.Count())
	}
}

func TestSparkline_Push_WrapsAround(t *testing.T) {
	sl := widgets.NewSparkline(3)
	sl.Push(10)
	sl.Push(20)
	sl.Push(30)
	sl.Push(40) // overwrites 10
	if sl.Count() != 3 {
		t.Errorf("expected count=3 after overflow, got %d", sl.Count())
	}
	vals := sl.Values()
	want := []float64{20, 30, 40}
	for i := range want {
		if vals[i] != want[i] {
			t.Errorf("value %d: expected %v, got %v", i, want[i], vals[i])
		}
	}
}

func TestSparkline_Draw_Empty(t *testing.T) {
	sl := widgets.NewSparkline(10)
	ctx := testDrawContext(20, 1)
	s, err := sl.Draw(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Size.Height != 1 {
		t.Errorf("expected height=1, got %d", s.Size.Height)
	}
}

func TestSparkline_Draw_FixedBand(t *testing.T) {
	sl := widgets.NewSparkline(10)
	sl.Lo, sl.Hi = 20, 35
	sl.Push(20)
	sl.Push(35)
	sl.Push(50) // clamped to the top block

	s, err := sl.Draw(testDrawContext(10, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"▁", "█", "█"}
	for i, w := range want {
		if g := cellText(s.Buffer[i]); g != w {
			t.Errorf("col %d: expected %q, got %q", i, w, g)
		}
	}
}

func TestSparkline_Draw_MoreDataThanWidth(t *testing.T) {
	sl := widgets.NewSparkline(60)
	for i := 0; i < 60; i++ {
		sl.Push(float64(i))
	}

	ctx := testDrawContext(10, 1)
	s, err := sl.Draw(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Newest value is the max of the visible window.
	if g := cellText(s.Buffer[9]); g != "█" {
		t.Errorf("expected newest column to be full block, got %q", g)
	}
}

func TestSparkline_Draw_FlatLine(t *testing.T) {
	sl := widgets.NewSparkline(10)
	for i := 0; i < 5; i++ {
		sl.Push(50.0)
	}

	s, err := sl.Draw(testDrawContext(20, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g := cellText(s.Buffer[0]); g != "▅" {
		t.Errorf("expected mid block for flat line, got %q", g)
	}
}

func TestSparkline_Draw_FlatZero(t *testing.T) {
	sl := widgets.NewSparkline(10)
	for i := 0; i < 5; i++ {
		sl.Push(0.0)
	}

	s, err := sl.Draw(testDrawContext(20, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g := cellText(s.Buffer[0]); g != "▁" {
		t.Errorf("expected lowest block for zero line, got %q", g)
	}
}
