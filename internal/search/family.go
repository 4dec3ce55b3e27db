package search

import (
	"regexp"
	"strings"
)

// Family bucketing mirrors the WordPress-era classifier and must stay
// byte-compatible with it: these labels are what users have bookmarked.
//
// Rules are checked in order and the first hit wins. The order is load-bearing
// (a "RX 90xx" string also matches the looser "RX 9xxx" shape), so do not
// reorder for readability.

// Fallback labels for spec strings no rule claims.
const (
	CPUFamilyLegacy = "旧世代"
	GPUFamilyOther  = "その他"
)

type familyRule struct {
	re    *regexp.Regexp
	label string
}

var ryzenFamilyRules = []familyRule{
	{regexp.MustCompile(`Ryzen [579] 9`), "Ryzen 9000シリーズ"},
	{regexp.MustCompile(`Ryzen [579] 8`), "Ryzen 8000シリーズ"},
	{regexp.MustCompile(`Ryzen [579] 7`), "Ryzen 7000シリーズ"},
	{regexp.MustCompile(`Ryzen [579] 5`), "Ryzen 5000シリーズ"},
	{regexp.MustCompile(`Ryzen [579] 4`), "Ryzen 4000シリーズ"},
}

var coreIFamilyRules = []familyRule{
	{regexp.MustCompile(`i[3579]-14`), "Core i 14th Gen"},
	{regexp.MustCompile(`i[3579]-13`), "Core i 13th Gen"},
	{regexp.MustCompile(`i[3579]-12`), "Core i 12th Gen"},
}

var gpuFamilyRules = []familyRule{
	{regexp.MustCompile(`(?i)RTX\s*50[0-9]{2}`), "RTX 50シリーズ"},
	{regexp.MustCompile(`(?i)RTX\s*40[0-9]{2}`), "RTX 40シリーズ"},
	{regexp.MustCompile(`(?i)RTX\s*30[0-9]{2}`), "RTX 30シリーズ"},
	{regexp.MustCompile(`(?i)RTX\s*20[0-9]{2}`), "RTX 20シリーズ"},
	{regexp.MustCompile(`(?i)GTX\s*16[0-9]{2}`), "GTX 16シリーズ"},
	{regexp.MustCompile(`(?i)GTX\s*10[0-9]{2}`), "GTX 10シリーズ"},
	{regexp.MustCompile(`(?i)RX\s*90[0-9]{2}`), "RX 9000シリーズ"},
	{regexp.MustCompile(`(?i)RX\s*7[0-9]{3}`), "RX 7000シリーズ"},
	{regexp.MustCompile(`(?i)RX\s*6[0-9]{3}`), "RX 6000シリーズ"},
	{regexp.MustCompile(`(?i)RX\s*5[0-9]{3}`), "RX 5000シリーズ"},
	{regexp.MustCompile(`(?i)Arc`), "Intel Arc"},
	{regexp.MustCompile(`(?i)Iris Xe|UHD|760M|780M`), "内蔵GPU"},
}

// CPUFamily derives the generation bucket from a raw CPU spec string.
func CPUFamily(cpu string) string {
	for _, rule := range ryzenFamilyRules {
		if rule.re.MatchString(cpu) {
			return rule.label
		}
	}
	// "Core Ultra" has no model-number shape; it sits between the Ryzen and
	// Core i generations in the ladder.
	if strings.Contains(strings.ToLower(cpu), "core ultra") {
		return "Core Ultra"
	}
	for _, rule := range coreIFamilyRules {
		if rule.re.MatchString(cpu) {
			return rule.label
		}
	}
	return CPUFamilyLegacy
}

// GPUFamily derives the series bucket from a raw GPU spec string.
func GPUFamily(gpu string) string {
	for _, rule := range gpuFamilyRules {
		if rule.re.MatchString(gpu) {
			return rule.label
		}
	}
	return GPUFamilyOther
}
