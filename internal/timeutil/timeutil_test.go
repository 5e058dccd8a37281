package timeutil

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	cases := map[time.Duration]string{
		30 * time.Second:             "30s",
		45 * time.Minute:             "45m",
		time.Hour + 40*time.Minute:   "1h 40m",
		26*time.Hour + 5*time.Minute: "26h 5m",
		-time.Minute:                 "0s",
	}
	for d, want := range cases {
		if got := FormatDuration(d); got != want {
			t.Fatalf("FormatDuration(%s) = %q, want %q", d, got, want)
		}
	}
}
