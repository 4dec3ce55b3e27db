package search

import "testing"

func TestCPUFamily(t *testing.T) {
	tests := []struct {
		cpu  string
		want string
	}{
		{"Ryzen 9 9950X", "Ryzen 9000シリーズ"},
		{"Ryzen 5 9600X", "Ryzen 9000シリーズ"},
		{"Ryzen 7 8700G", "Ryzen 8000シリーズ"},
		{"Ryzen 7 7700X", "Ryzen 7000シリーズ"},
		{"Ryzen 5 5600X", "Ryzen 5000シリーズ"},
		{"Ryzen 7 4700G", "Ryzen 4000シリーズ"},
		{"Core Ultra 7 155H", "Core Ultra"},
		{"core ultra 5 135H", "Core Ultra"},
		{"Core i9-14900K", "Core i 14th Gen"},
		{"Core i5-13400", "Core i 13th Gen"},
		{"Core i7-12700", "Core i 12th Gen"},
		{"Core i7-11700", "旧世代"},
		{"Ryzen 7 3700X", "旧世代"},
		{"Celeron N4500", "旧世代"},
		{"", "旧世代"},
	}

	for _, tt := range tests {
		if got := CPUFamily(tt.cpu); got != tt.want {
			t.Errorf("CPUFamily(%q) = %q, want %q", tt.cpu, got, tt.want)
		}
	}
}

func TestGPUFamily(t *testing.T) {
	tests := []struct {
		gpu  string
		want string
	}{
		{"RTX 5090", "RTX 50シリーズ"},
		{"RTX 4070 Ti", "RTX 40シリーズ"},
		{"rtx4060", "RTX 40シリーズ"},
		{"RTX 3060 (8GB)", "RTX 30シリーズ"},
		{"RTX 2060", "RTX 20シリーズ"},
		{"GTX 1660 SUPER", "GTX 16シリーズ"},
		{"GTX 1080", "GTX 10シリーズ"},
		{"RX 9070 XT", "RX 9000シリーズ"},
		{"RX 7800 XT", "RX 7000シリーズ"},
		{"RX 6600", "RX 6000シリーズ"},
		{"RX 5700 XT", "RX 5000シリーズ"},
		{"Intel Arc A770", "Intel Arc"},
		{"Arc B580", "Intel Arc"},
		{"Iris Xe Graphics", "内蔵GPU"},
		{"UHD Graphics 770", "内蔵GPU"},
		{"Radeon 760M", "内蔵GPU"},
		{"Radeon 780M", "内蔵GPU"},
		{"GeForce GT 1030", "その他"},
		{"", "その他"},
	}

	for _, tt := range tests {
		if got := GPUFamily(tt.gpu); got != tt.want {
			t.Errorf("GPUFamily(%q) = %q, want %q", tt.gpu, got, tt.want)
		}
	}
}

// A 90xx string also fits the looser RX 9xxx shape; the ladder must bucket it
// into the 9000 series, not fall through.
func TestGPUFamilyOrder(t *testing.T) {
	if got := GPUFamily("RX 9060"); got != "RX 9000シリーズ" {
		t.Errorf("GPUFamily(RX 9060) = %q, want RX 9000シリーズ", got)
	}
}
