package ui

import "testing"

func TestStyles(t *testing.T) {
	if got := Success("ok"); got != ColorGreen+"ok"+ColorReset {
		t.Errorf("unexpected Success output %q", got)
	}
	if got := Label("Rows", "3"); got != ColorBold+"Rows:"+ColorReset+" "+ColorWhite+"3"+ColorReset {
		t.Errorf("unexpected Label output %q", got)
	}
}

func TestDisable(t *testing.T) {
	Disable()
	if got := Error("boom"); got != "boom" {
		t.Errorf("expected plain text after Disable, got %q", got)
	}
	if got := Label("Rows", "3"); got != "Rows: 3" {
		t.Errorf("expected plain label after Disable, got %q", got)
	}
}
