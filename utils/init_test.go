package utils

import "testing"

func TestCanColorize(t *testing.T) {
	col := func(is ...interface{}) string {
		s := "«"
		for _, i := range is {
			s += i.(string)
		}
		return s + "»"
	}

	Opts().SetNoColorize(false)
	if got := CanColorize(col)("a", "b"); got != "«ab»" {
		t.Errorf("CanColorize passed through as %q", got)
	}

	Opts().SetNoColorize(true)
	defer Opts().SetNoColorize(false)
	if got := CanColorize(col)("a", "b"); got != "ab" {
		t.Errorf("CanColorize with colorization disabled gave %q", got)
	}
}

func TestOnVerbose(t *testing.T) {
	ran := false
	Opts().OnVerbose(func() { ran = true })
	if ran {
		t.Error("verbose thunk ran with verbosity disabled")
	}
}
