package folio

import (
	"testing"
	"time"
)

func TestLoginLimiter(t *testing.T) {
	l := NewLoginLimiter(3, time.Minute)

	// Check alone never counts as an attempt.
	for i := 0; i < 10; i++ {
		if !l.Check("1.2.3.4") {
			t.Fatalf("Check consumed an attempt on call %d", i)
		}
	}

	for i := 0; i < 3; i++ {
		l.Record("1.2.3.4")
	}
	if l.Check("1.2.3.4") {
		t.Error("expected IP to be blocked after max failures")
	}
	if !l.Check("5.6.7.8") {
		t.Error("unrelated IP should not be affected")
	}
}

func TestLoginLimiterWindowExpiry(t *testing.T) {
	l := NewLoginLimiter(1, 10*time.Millisecond)

	l.Record("1.2.3.4")
	if l.Check("1.2.3.4") {
		t.Fatal("expected block inside the window")
	}
	time.Sleep(20 * time.Millisecond)
	if !l.Check("1.2.3.4") {
		t.Error("expected the attempt to age out of the window")
	}
}
