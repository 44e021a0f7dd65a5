// Package config reads and writes financedash.yaml.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/desco97/financedashboard/internal/model"
	"github.com/desco97/financedashboard/internal/tax"
)

// Filename is the config file name inside a project directory.
const Filename = "financedash.yaml"

// Config represents the top-level financedash.yaml configuration.
type Config struct {
	DataDir    string           `yaml:"data_dir"`
	Git        GitConfig        `yaml:"git"`
	Categories []CategoryConfig `yaml:"categories"`
	Tax        []BracketConfig  `yaml:"tax_brackets"`
}

// GitConfig controls git integration for the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// CategoryConfig is one taxonomy category with its subcategory labels.
type CategoryConfig struct {
	Name          string   `yaml:"name"`
	Subcategories []string `yaml:"subcategories"`
}

// BracketConfig is one marginal tax band. Decimal fields are strings in the
// YAML so rates survive round-trips exactly. An empty max means unbounded.
type BracketConfig struct {
	Min  string `yaml:"min"`
	Max  string `yaml:"max,omitempty"`
	Rate string `yaml:"rate"`
}

// Load reads a financedash.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Taxonomy converts the configured categories into the classifier's taxonomy.
func (c *Config) Taxonomy() model.Taxonomy {
	t := model.Taxonomy{Categories: make([]model.TaxonomyCategory, 0, len(c.Categories))}
	for _, cat := range c.Categories {
		t.Categories = append(t.Categories, model.TaxonomyCategory{
			Name:          cat.Name,
			Subcategories: cat.Subcategories,
		})
	}
	return t
}

// TaxBrackets converts the configured brackets into tax.Bracket values.
func (c *Config) TaxBrackets() ([]tax.Bracket, error) {
	out := make([]tax.Bracket, 0, len(c.Tax))
	for i, b := range c.Tax {
		min, err := decimal.NewFromString(b.Min)
		if err != nil {
			return nil, fmt.Errorf("bracket %d: parsing min %q: %w", i+1, b.Min, err)
		}
		rate, err := decimal.NewFromString(b.Rate)
		if err != nil {
			return nil, fmt.Errorf("bracket %d: parsing rate %q: %w", i+1, b.Rate, err)
		}
		bracket := tax.Bracket{Min: min, Rate: rate}
		if b.Max != "" {
			max, err := decimal.NewFromString(b.Max)
			if err != nil {
				return nil, fmt.Errorf("bracket %d: parsing max %q: %w", i+1, b.Max, err)
			}
			bracket.Max = &max
		}
		out = append(out, bracket)
	}
	return out, nil
}

// Default returns a Config with sensible defaults for a new project: the
// stock category taxonomy and the 2023 US single-filer brackets.
func Default() *Config {
	return &Config{
		DataDir: "data",
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "financedash",
			AuthorEmail: "financedash@localhost",
		},
		Categories: []CategoryConfig{
			{Name: "Income", Subcategories: []string{"Salary", "Bonus", "Interest", "Dividends", "Other Income"}},
			{Name: "Housing", Subcategories: []string{"Rent", "Mortgage", "Utilities", "Maintenance", "Insurance"}},
			{Name: "Transportation", Subcategories: []string{"Car Payment", "Fuel", "Public Transit", "Maintenance", "Insurance"}},
			{Name: "Food", Subcategories: []string{"Groceries", "Dining Out", "Delivery", "Snacks"}},
			{Name: "Healthcare", Subcategories: []string{"Insurance", "Medications", "Doctor Visits", "Gym Membership"}},
			{Name: "Entertainment", Subcategories: []string{"Movies", "Streaming Services", "Hobbies", "Events"}},
			{Name: "Shopping", Subcategories: []string{"Clothing", "Electronics", "Home Goods", "Personal Care"}},
			{Name: "Education", Subcategories: []string{"Tuition", "Books", "Courses", "School Supplies"}},
			{Name: "Travel", Subcategories: []string{"Flights", "Hotels", "Car Rental", "Activities"}},
			{Name: "Savings", Subcategories: []string{"Emergency Fund", "Investments", "Retirement"}},
			{Name: "Miscellaneous", Subcategories: []string{"Gifts", "Donations", "Other"}},
		},
		Tax: []BracketConfig{
			{Min: "0", Max: "11000", Rate: "0.10"},
			{Min: "11000", Max: "44725", Rate: "0.12"},
			{Min: "44725", Max: "95375", Rate: "0.22"},
			{Min: "95375", Max: "182100", Rate: "0.24"},
			{Min: "182100", Max: "231250", Rate: "0.32"},
			{Min: "231250", Max: "578125", Rate: "0.35"},
			{Min: "578125", Rate: "0.37"},
		},
	}
}
