// Package inventory provides the sample pharmacy data the views render.
//
// Data comes from an embedded YAML seed, or from a seed file named in config.
// Nothing is persisted: Reseed only shuffles stock levels in memory so the
// dashboard has new targets to animate toward.
package inventory

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"

	"github.com/rileyhilliard/medstock/internal/errors"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// ExpiringWindowDays is how close to expiry a product counts as expiring soon.
const ExpiringWindowDays = 30

// Product is one stocked item.
type Product struct {
	SKU           string  `yaml:"sku"`
	Name          string  `yaml:"name"`
	Category      string  `yaml:"category"`
	Stock         int     `yaml:"stock"`
	ReorderLevel  int     `yaml:"reorder_level"`
	UnitPrice     float64 `yaml:"unit_price"`
	ExpiresInDays int     `yaml:"expires_in_days"`
}

// LowStock reports whether stock is at or below the reorder level.
func (p Product) LowStock() bool {
	return p.Stock <= p.ReorderLevel
}

// ExpiringSoon reports whether the product expires within the window.
func (p Product) ExpiringSoon() bool {
	return p.ExpiresInDays <= ExpiringWindowDays
}

// Pressure is stock relative to the reorder level; lower means more urgent.
func (p Product) Pressure() float64 {
	if p.ReorderLevel <= 0 {
		return float64(p.Stock)
	}
	return float64(p.Stock) / float64(p.ReorderLevel)
}

// SalesPoint is revenue for one month.
type SalesPoint struct {
	Month   string  `yaml:"month"`
	Revenue float64 `yaml:"revenue"`
}

// LandingStat is a headline number on the landing page.
type LandingStat struct {
	Key      string  `yaml:"key"`
	Label    string  `yaml:"label"`
	Value    float64 `yaml:"value"`
	Decimals int     `yaml:"decimals"`
	Prefix   string  `yaml:"prefix"`
	Suffix   string  `yaml:"suffix"`
}

// Seed is the full sample data set.
type Seed struct {
	Products []Product     `yaml:"products"`
	Sales    []SalesPoint  `yaml:"sales"`
	Landing  []LandingStat `yaml:"landing"`
}

// Load reads a seed file, or the embedded seed when path is empty.
func Load(path string) (*Seed, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.ErrData,
				"Failed to read seed file: "+path,
				"Check data.seed_file in your config, or leave it empty to use the built-in sample data")
		}
		data = b
	}

	seed, err := Parse(data)
	if err != nil && path != "" {
		if e, ok := err.(*errors.Error); ok {
			e.Message = path + ": " + e.Message
		}
	}
	return seed, err
}

// Parse decodes and validates seed YAML.
func Parse(data []byte) (*Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrData,
			"Invalid seed data",
			"Check the YAML syntax of the seed file")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the seed is usable by the views.
func (s *Seed) Validate() error {
	if len(s.Products) == 0 {
		return errors.New(errors.ErrData,
			"Seed data has no products",
			"Add at least one entry under 'products'")
	}
	seen := make(map[string]bool, len(s.Products))
	for i, p := range s.Products {
		if p.SKU == "" {
			return errors.New(errors.ErrData,
				fmt.Sprintf("Product %d has no sku", i+1),
				"Give every product a unique sku")
		}
		if seen[p.SKU] {
			return errors.New(errors.ErrData,
				fmt.Sprintf("Duplicate sku %q", p.SKU),
				"Give every product a unique sku")
		}
		seen[p.SKU] = true
		if p.Stock < 0 || p.ReorderLevel < 0 {
			return errors.New(errors.ErrData,
				fmt.Sprintf("Product %q has negative stock or reorder level", p.SKU),
				"Stock counts start at 0")
		}
	}
	return s.validateLanding()
}

func (s *Seed) validateLanding() error {
	keys := make(map[string]bool, len(s.Landing))
	for i, l := range s.Landing {
		if l.Key == "" {
			return errors.New(errors.ErrData,
				fmt.Sprintf("Landing stat %d has no key", i+1),
				"Give every entry under 'landing' a unique key")
		}
		if keys[l.Key] {
			return errors.New(errors.ErrData,
				fmt.Sprintf("Duplicate landing key %q", l.Key),
				"Give every entry under 'landing' a unique key")
		}
		keys[l.Key] = true
		if l.Decimals < 0 {
			return errors.New(errors.ErrData,
				fmt.Sprintf("Landing stat %q has negative decimals", l.Key),
				"Use 0 for whole numbers")
		}
	}
	return nil
}

// Summary is what the metric cards display.
type Summary struct {
	Products     int
	Units        int
	LowStock     int
	ExpiringSoon int
	// StockHealth is the percentage of products above their reorder level.
	StockHealth float64
	// Revenue is the latest month's revenue.
	Revenue float64
}

// Summary derives card targets from the seed.
func (s *Seed) Summary() Summary {
	var sum Summary
	sum.Products = len(s.Products)
	for _, p := range s.Products {
		sum.Units += p.Stock
		if p.LowStock() {
			sum.LowStock++
		}
		if p.ExpiringSoon() {
			sum.ExpiringSoon++
		}
	}
	if sum.Products > 0 {
		healthy := sum.Products - sum.LowStock
		sum.StockHealth = float64(healthy) * 100 / float64(sum.Products)
	}
	if n := len(s.Sales); n > 0 {
		sum.Revenue = s.Sales[n-1].Revenue
	}
	return sum
}

// RevenueSeries returns monthly revenue in order, for sparklines.
func (s *Seed) RevenueSeries() []float64 {
	out := make([]float64, len(s.Sales))
	for i, p := range s.Sales {
		out[i] = p.Revenue
	}
	return out
}

// Categories returns the distinct product categories, sorted.
func (s *Seed) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, p := range s.Products {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// ByPressure returns products in category (all when empty), most urgent first.
func (s *Seed) ByPressure(category string) []Product {
	var out []Product
	for _, p := range s.Products {
		if category == "" || p.Category == category {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Pressure() < out[j].Pressure()
	})
	return out
}

// Reseed returns a copy with stock levels moved up or down by up to 40%,
// deterministically for a given seed.
func (s *Seed) Reseed(seed uint64) *Seed {
	rng := rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))

	next := &Seed{
		Products: make([]Product, len(s.Products)),
		Sales:    append([]SalesPoint(nil), s.Sales...),
		Landing:  append([]LandingStat(nil), s.Landing...),
	}
	for i, p := range s.Products {
		factor := 0.6 + rng.Float64()*0.8
		p.Stock = int(float64(p.Stock) * factor)
		next.Products[i] = p
	}
	return next
}
