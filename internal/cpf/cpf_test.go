package cpf

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"formatted valid", "529.982.247-25", true},
		{"bare valid", "52998224725", true},
		{"classic sequence valid", "12345678909", true},
		{"spaces stripped", "529 982 247 25", true},
		{"wrong second check digit", "52998224724", false},
		{"wrong first check digit", "52998224715", false},
		{"repeated digits pass checksum but are rejected", "11111111111", false},
		{"all zeros", "00000000000", false},
		{"too short", "5299822472", false},
		{"too long", "529982247255", false},
		{"letter in place of digit", "5299822472a", false},
		{"letter after punctuation strip", "529.982.247-2X", false},
		{"empty", "", false},
		{"only punctuation", "...---", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.input); got != tt.want {
				t.Errorf("IsValid(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"529.982.247-25", "52998224725"},
		{"52998224725", "52998224725"},
		{"529 982 247 25", "52998224725"},
		{"abc.123", "abc123"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
