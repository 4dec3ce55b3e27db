// Package options carries the filter reference data: which makers, CPU/GPU
// models, memory and storage sizes the search UI offers. The data is
// externally maintained (filter-options.json) and read-only here.
package options

import (
	"encoding/json"
	"fmt"
	"os"
)

// FilterOptions is the full option catalog. CPU and GPU options are grouped
// under series headings; the map value order is the display order of the
// models within a series.
type FilterOptions struct {
	Makers              []string            `json:"makers"`
	CPUOptionsHierarchy map[string][]string `json:"cpuOptionsHierarchy"`
	GPUOptionsHierarchy map[string][]string `json:"gpuOptionsHierarchy"`
	MemoryOptions       []string            `json:"memoryOptions"`
	StorageOptions      []string            `json:"storageOptions"`
}

// Load reads filter options from a JSON file.
func Load(path string) (*FilterOptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read filter options: %w", err)
	}

	var opts FilterOptions
	if err := json.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("failed to parse filter options: %w", err)
	}
	return &opts, nil
}

// LoadOrDefaults reads filter options from a JSON file, falling back to the
// built-in defaults when the file is missing or malformed. The error is
// informational; the returned options are always usable.
func LoadOrDefaults(path string) (*FilterOptions, error) {
	opts, err := Load(path)
	if err != nil {
		return Defaults(), err
	}
	return opts, nil
}

// Defaults returns the fallback option set used when the config file is
// unavailable.
func Defaults() *FilterOptions {
	return &FilterOptions{
		Makers: []string{
			"ドスパラ", "パソコン工房", "ツクモ", "サイコム", "レノボ", "フロンティア", "マウスコンピューター",
		},
		CPUOptionsHierarchy: map[string][]string{
			"Core Ultra":      {"Core Ultra 7 155H", "Core Ultra 5 135H"},
			"Core i 14th Gen": {"Core i9-14900K", "Core i7-14700K"},
			"Ryzen 7000シリーズ":  {"Ryzen 9 7950X", "Ryzen 7 7700X"},
		},
		GPUOptionsHierarchy: map[string][]string{
			"RTX 40シリーズ": {"RTX 4090 (24GB)", "RTX 4080 (16GB)", "RTX 4070 (12GB)"},
			"RTX 30シリーズ": {"RTX 3080 (10GB)", "RTX 3070 (8GB)", "RTX 3060 (8GB)"},
		},
		MemoryOptions:  []string{"8GB", "16GB", "32GB", "64GB"},
		StorageOptions: []string{"256GB", "512GB", "1TB", "2TB"},
	}
}

// CPUSeries returns the models under a CPU series heading. The bool
// distinguishes a series heading from a plain model value, which is what
// chip removal needs to expand series chips.
func (o *FilterOptions) CPUSeries(series string) ([]string, bool) {
	models, ok := o.CPUOptionsHierarchy[series]
	return models, ok
}

// GPUSeries returns the models under a GPU series heading.
func (o *FilterOptions) GPUSeries(series string) ([]string, bool) {
	models, ok := o.GPUOptionsHierarchy[series]
	return models, ok
}
