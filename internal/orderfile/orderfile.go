// internal/orderfile/orderfile.go

// Package orderfile reads beer orders from YAML files.
package orderfile

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pub-invoicing/internal/model"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var sample []byte

// OrderFile is the YAML counterpart of model.InvoiceRequest plus an optional
// budget.
type OrderFile struct {
	Pub    string
	Budget *decimal.Decimal
	Orders model.BeerOrderLines
}

type fileLine struct {
	Beer      string      `yaml:"beer"`
	Quantity  int         `yaml:"quantity"`
	UnitPrice yamlDecimal `yaml:"unit_price"`
}

type fileDocument struct {
	Pub    string       `yaml:"pub"`
	Budget *yamlDecimal `yaml:"budget"`
	Orders []fileLine   `yaml:"orders"`
}

// yamlDecimal parses the scalar text itself, so unquoted numbers never pass
// through float64.
type yamlDecimal struct {
	decimal.Decimal
}

func (d *yamlDecimal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a number", node.Line)
	}

	value, err := decimal.NewFromString(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: invalid number %q", node.Line, node.Value)
	}
	d.Decimal = value

	return nil
}

// Load reads and decodes the order file at path.
func Load(path string) (OrderFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return OrderFile{}, fmt.Errorf("error while reading order file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML order file contents.
func Parse(data []byte) (OrderFile, error) {
	var doc fileDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return OrderFile{}, fmt.Errorf("error while decoding order file: %w", err)
	}

	file := OrderFile{
		Pub:    doc.Pub,
		Orders: make(model.BeerOrderLines, 0, len(doc.Orders)),
	}
	if doc.Budget != nil {
		budget := doc.Budget.Decimal
		file.Budget = &budget
	}
	for _, line := range doc.Orders {
		file.Orders = append(file.Orders, model.BeerOrderLine{
			Beer:      line.Beer,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice.Decimal,
		})
	}

	return file, nil
}

// Sample returns the built-in Patrick's Pub order.
func Sample() OrderFile {
	file, err := Parse(sample)
	if err != nil {
		panic(fmt.Errorf("embedded sample order is broken: %w", err))
	}

	return file
}
