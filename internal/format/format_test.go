package format

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	ts := time.Date(2024, 5, 6, 20, 5, 9, 123, time.UTC)
	if got := FormatTimestamp(ts, nil); got != "2024-05-06 20:05:09" {
		t.Fatalf("FormatTimestamp = %q", got)
	}
	loc := time.FixedZone("UTC-3", -3*3600)
	if got := FormatTimestamp(ts, loc); got != "2024-05-06 17:05:09" {
		t.Fatalf("FormatTimestamp in UTC-3 = %q", got)
	}
}

func TestJoinQuoted(t *testing.T) {
	cases := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"rex"}, "'rex'"},
		{[]string{"rex", "ems"}, "'rex' o 'ems'"},
		{[]string{"rex", "obsidian", "ems", "otro"}, "'rex', 'obsidian', 'ems' o 'otro'"},
	}

	for _, tc := range cases {
		if got := JoinQuoted(tc.in, "o"); got != tc.want {
			t.Fatalf("JoinQuoted(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Second, "30s"},
		{90 * time.Second, "1m30s"},
		{2 * time.Minute, "2m"},
		{time.Hour, "1h0m"},
	}

	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Fatalf("FormatDuration(%s) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatUptimeAndRAM(t *testing.T) {
	if got := FormatUptime(90061); got != "1d1h" {
		t.Fatalf("FormatUptime = %q", got)
	}
	if got := FormatUptime(3660); got != "1h1m" {
		t.Fatalf("FormatUptime = %q", got)
	}
	if got := FormatRAM(512); got != "512M" {
		t.Fatalf("FormatRAM = %q", got)
	}
	if got := FormatRAM(2048); got != "2.0G" {
		t.Fatalf("FormatRAM = %q", got)
	}
}

func TestSplitLines(t *testing.T) {
	if got := SplitLines("a\nb", 10); len(got) != 1 || got[0] != "a\nb" {
		t.Fatalf("short text should stay whole, got %q", got)
	}

	got := SplitLines("aaaa\nbbbb\ncccc\n", 10)
	want := []string{"aaaa\nbbbb", "cccc"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("SplitLines = %q, want %q", got, want)
	}

	got = SplitLines("ab\n"+strings.Repeat("x", 12), 5)
	want = []string{"ab", "xxxxx", "xxxxx", "xx"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("long line split = %q, want %q", got, want)
	}
}

func TestSplitLinesCountsUTF16Units(t *testing.T) {
	// Each emoji takes two UTF-16 units.
	got := SplitLines("😀😀😀", 4)
	if len(got) != 2 || got[0] != "😀😀" || got[1] != "😀" {
		t.Fatalf("SplitLines = %q", got)
	}
	// Accented letters are one unit each.
	if got := SplitLines("mecánico", 8); len(got) != 1 {
		t.Fatalf("accented text should fit, got %q", got)
	}
}
