package ui

import "testing"

func TestToTitle(t *testing.T) {
	cases := map[string]string{
		"pending":   "Pending",
		"all":       "All",
		"completed": "Completed",
		"":          "",
	}
	for in, want := range cases {
		if got := ToTitle(in); got != want {
			t.Errorf("ToTitle(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"a longer string", 10, "a longe..."},
		{"abc", 0, ""},
		{"abcdef", 2, "ab"},
	}
	for _, tc := range cases {
		if got := Truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("6a1f1c2d-9b3e-4f5a"); got != "6a1f1c2d" {
		t.Errorf("ShortID = %q, want %q", got, "6a1f1c2d")
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID should keep short IDs intact, got %q", got)
	}
}
