package search

import "testing"

func TestNormalizeGPU(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ti suffix glued", "RTX4070Ti", "RTX 4070 Ti"},
		{"ti suffix spaced", "RTX 4070Ti", "RTX 4070 Ti"},
		{"rx ti suffix", "RX6750Ti", "RX 6750 Ti"},
		{"super lowercase", "RTX 4070 super", "RTX 4070 SUPER"},
		{"super glued", "RTX4070SUPER", "RTX 4070 SUPER"},
		{"vram wrapped", "RTX 4070 12GB", "RTX 4070 (12GB)"},
		{"vram already wrapped", "RTX 4070 (12GB)", "RTX 4070 (12GB)"},
		{"laptop vram", "RTX 4060 Laptop 8GB", "RTX 4060 Laptop (8GB)"},
		{"arc gets intel", "Arc A770", "Arc A770"},
		{"intel arc stays", "Intel Arc A770", "Arc A770"},
		{"arc b series", "Arc B580", "Arc B580"},
		{"fullwidth", "ＲＴＸ　４０７０", "RTX 4070"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeCPU(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"intel prefix stripped", "Intel Core i7-14700K", "Core i7-14700K"},
		{"processor suffix stripped", "Core i7-14700K Processor", "Core i7-14700K"},
		{"amd prefix stripped", "AMD Ryzen 7 7700X", "Ryzen 7 7700X"},
		{"core ultra spacing", "Core  Ultra  7  155H", "Core Ultra 7 155H"},
		{"ryzen spacing", "Ryzen  5  7600", "Ryzen 5 7600"},
		{"lowercase prefixes", "intel core i5-13400", "core i5-13400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIntegratedGPU(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"UHD", "UHD Graphics"},
		{"Iris Xe", "Iris Xe Graphics"},
		{"760M", "Radeon 760M"},
		{"780M", "Radeon 780M"},
		{"UHD Graphics 770", "UHD Graphics 770"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// Normalize must be a fixed point of itself: matching normalizes both sides,
// and an already-canonical option must not drift.
func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"RTX4070Ti",
		"RTX 4070 super",
		"RTX 4070 12GB",
		"RTX 4060 Laptop 8GB",
		"Arc A770",
		"Intel Arc A770",
		"Intel Core i7-14700K Processor",
		"AMD Ryzen 9 7950X",
		"Core Ultra 7 155H",
		"UHD",
		"Iris Xe",
		"760M",
		"ＲＴＸ　４０７０Ｔｉ",
		"GeForce RTX 3060 (8GB)",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name    string
		filter  string
		product string
		want    bool
	}{
		{"exact", "RTX 4070", "RTX 4070", true},
		{"product longer", "RTX 4070", "GeForce RTX 4070 (12GB)", true},
		{"filter longer", "RTX 4070 (12GB)", "RTX 4070", true},
		{"glued product", "RTX 4070 Ti", "RTX4070Ti", true},
		{"different model", "RTX 4070", "RTX 4080", false},
		{"vendor prefix", "Core i7-14700K", "Intel Core i7-14700K", true},
		{"empty filter", "", "RTX 4070", false},
		{"empty product", "RTX 4070", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Matches(tt.filter, tt.product); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.filter, tt.product, got, tt.want)
			}
		})
	}
}

func TestMatchesAny(t *testing.T) {
	if !MatchesAny([]string{"RTX 4080", "RTX 4070"}, "GeForce RTX 4070 12GB") {
		t.Error("expected second value to match")
	}
	if MatchesAny([]string{"RTX 4080", "RTX 4090"}, "GeForce RTX 4070 12GB") {
		t.Error("expected no value to match")
	}
	if MatchesAny(nil, "RTX 4070") {
		t.Error("empty filter list must not match")
	}
}

func TestNormalizeKeyword(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"RTX 4070", "rtx 4070"},
		{"ＲＴＸ４０７０", "rtx4070"},
		{"  GALLERIA   XA7C  ", "galleria xa7c"},
	}

	for _, tt := range tests {
		if got := normalizeKeyword(tt.input); got != tt.want {
			t.Errorf("normalizeKeyword(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// "RTX 4070 Ti 12GB" exercises the Ti split and the VRAM wrap in one string.
func TestNormalizeCombinedRules(t *testing.T) {
	got := Normalize("RTX4070Ti 12GB")
	want := "RTX 4070 Ti (12GB)"
	if got != want {
		t.Errorf("Normalize(%q) = %q, want %q", "RTX4070Ti 12GB", got, want)
	}
}
