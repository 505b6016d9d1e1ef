package sanitizer

import "testing"

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty string", input: "", expected: ""},
		{name: "only whitespace", input: "   \t\n  ", expected: ""},
		{name: "already clean", input: "Board Meeting", expected: "Board Meeting"},
		{name: "leading and trailing", input: "  Board Meeting  ", expected: "Board Meeting"},
		{name: "inner runs collapsed", input: "Board \t  Meeting", expected: "Board Meeting"},
		{name: "newlines collapsed", input: "Board\nMeeting", expected: "Board Meeting"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.expected {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: " Dana@Uni.EDU ", expected: "dana@uni.edu"},
		{input: "dana@uni.edu", expected: "dana@uni.edu"},
		{input: "", expected: ""},
	}

	for _, tt := range tests {
		if got := NormalizeEmail(tt.input); got != tt.expected {
			t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
