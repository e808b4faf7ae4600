package util

import "testing"

func TestMaskToken(t *testing.T) {
	cases := map[string]string{
		"":                  "",
		"ab":                "ab",
		"abc":               "a...c",
		"abcde":             "ab...de",
		"abcdefghij":        "abcd...ghij",
		"sk-live-123456789": "sk-l...6789",
	}
	for input, want := range cases {
		if got := MaskToken(input); got != want {
			t.Fatalf("MaskToken(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestWritablePath(t *testing.T) {
	t.Setenv("WRITABLE_PATH", "  /var/lib/airis//data ")
	if got := WritablePath(); got != "/var/lib/airis/data" {
		t.Fatalf("WritablePath() = %q", got)
	}

	t.Setenv("WRITABLE_PATH", "")
	if got := WritablePath(); got != "" {
		t.Fatalf("WritablePath() with empty env = %q", got)
	}
}
