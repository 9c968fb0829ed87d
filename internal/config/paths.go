package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default input file names inside the data directory.
const (
	DealsCSVName   = "ma_deals.csv"
	ReturnsCSVName = "ma_rets.csv"
	FactorsCSVName = "FF_Research_Data_Factors_daily.csv"
)

// PathsConfig locates the pipeline's input data and report output.
type PathsConfig struct {
	DataDir    string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	ReportsDir string `yaml:"reports_dir" envconfig:"REPORTS_DIR" validate:"required"`

	// File name overrides; defaults match the standard data set.
	DealsCSV   string `yaml:"deals_csv" envconfig:"DEALS_CSV" validate:"required"`
	ReturnsCSV string `yaml:"returns_csv" envconfig:"RETURNS_CSV" validate:"required"`
	FactorsCSV string `yaml:"factors_csv" envconfig:"FACTORS_CSV" validate:"required"`
}

// DefaultPaths returns the default path layout relative to the working
// directory.
func DefaultPaths() PathsConfig {
	return PathsConfig{
		DataDir:    "data",
		ReportsDir: filepath.Join("data", "reports"),
		DealsCSV:   DealsCSVName,
		ReturnsCSV: ReturnsCSVName,
		FactorsCSV: FactorsCSVName,
	}
}

// DealsPath returns the full path of the deal records file.
func (p PathsConfig) DealsPath() string {
	return filepath.Join(p.DataDir, p.DealsCSV)
}

// ReturnsPath returns the full path of the daily return file.
func (p PathsConfig) ReturnsPath() string {
	return filepath.Join(p.DataDir, p.ReturnsCSV)
}

// FactorsPath returns the full path of the daily factor file.
func (p PathsConfig) FactorsPath() string {
	return filepath.Join(p.DataDir, p.FactorsCSV)
}

// EnsureReportsDir creates the reports directory if it does not exist.
func (p PathsConfig) EnsureReportsDir() error {
	if err := os.MkdirAll(p.ReportsDir, 0o755); err != nil {
		return fmt.Errorf("create reports directory: %w", err)
	}
	return nil
}

// ValidateInputs checks that all three input files exist.
func (p PathsConfig) ValidateInputs() error {
	for _, path := range []string{p.DealsPath(), p.ReturnsPath(), p.FactorsPath()} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("input file not available: %s: %w", path, err)
		}
	}
	return nil
}
