package clock

import (
	"testing"
	"time"
)

func TestFixed(t *testing.T) {
	at := time.Date(2024, time.February, 29, 8, 0, 0, 0, time.UTC)
	c := Fixed(at)
	if !c.Now().Equal(at) || !c.Now().Equal(at) {
		t.Fatalf("Fixed clock moved")
	}
}

func TestFunc(t *testing.T) {
	calls := 0
	c := Func(func() time.Time {
		calls++
		return time.Unix(0, 0)
	})
	c.Now()
	c.Now()
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestSystemIsLocal(t *testing.T) {
	if loc := System().Now().Location(); loc != time.Local {
		t.Fatalf("expected local location, got %v", loc)
	}
}
