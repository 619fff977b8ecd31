package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Company identity printed on every invoice
	Company CompanyConfig `yaml:"company"`

	// Invoice settings
	Invoice InvoiceConfig `yaml:"invoice"`
}

type CompanyConfig struct {
	Name     string `yaml:"name"`
	Address  string `yaml:"address"`
	Tagline  string `yaml:"tagline"`
	GSTIN    string `yaml:"gstin"`     // optional
	LogoPath string `yaml:"logo_path"` // optional, path to a logo image
}

type InvoiceConfig struct {
	NumberPrefix string `yaml:"number_prefix"` // Invoice number prefix (e.g., "HMO")
	OutputDir    string `yaml:"output_dir"`    // Directory for exported print documents
}

// DefaultConfigPath returns ~/.config/dairybill/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "dairybill", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "dairybill", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Company: CompanyConfig{
			Name:    "HM Organics",
			Address: "D-003 Sai inclave Tilpta, Greater Noida (U.P)",
			Tagline: "Quality Dairy Products",
		},
		Invoice: InvoiceConfig{
			NumberPrefix: "HMO",
			OutputDir:    filepath.Join(homeDir, ".config", "dairybill", "invoices"),
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the invoice output directory
func (c *Config) EnsureDirectories() error {
	return os.MkdirAll(c.Invoice.OutputDir, 0755)
}
