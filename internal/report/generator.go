package report

import (
	"encoding/json"
	"fmt"

	"fjacquet/expense-tracker/internal/logging"
	"fjacquet/expense-tracker/internal/models"
	"fjacquet/expense-tracker/internal/render"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Output formats supported by Generator.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML, FormatCSV}
}

// line is the serialized form of one CategoryTotal.
type line struct {
	Category string  `json:"category" yaml:"category" csv:"Category"`
	Total    float64 `json:"total" yaml:"total" csv:"-"`
	Amount   string  `json:"-" yaml:"-" csv:"Total Amount"`
}

// Generator encodes category reports.
type Generator struct {
	currencySymbol string
	logger         logging.Logger
}

// NewGenerator creates a Generator. currencySymbol is used by the text format.
func NewGenerator(currencySymbol string, logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewDiscardLogger()
	}
	return &Generator{
		currencySymbol: currencySymbol,
		logger:         logger.WithField("component", "ReportGenerator"),
	}
}

// Generate encodes totals in the given format. The text format is markdown.
func (g *Generator) Generate(totals []models.CategoryTotal, format string) ([]byte, error) {
	lines := make([]line, 0, len(totals))
	for _, t := range totals {
		lines = append(lines, line{
			Category: t.Category,
			Total:    t.Total.InexactFloat64(),
			Amount:   models.FormatAmount(t.Total),
		})
	}

	var (
		out []byte
		err error
	)
	switch format {
	case FormatText, "":
		out = []byte(render.CategoryTotals(totals, g.currencySymbol))
	case FormatJSON:
		out, err = json.MarshalIndent(lines, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(lines)
	case FormatCSV:
		out, err = gocsv.MarshalBytes(&lines)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
	if err != nil {
		g.logger.WithError(err).Error("Failed to encode report", logging.F(logging.FieldFormat, format))
		return nil, fmt.Errorf("failed to encode %s report: %w", format, err)
	}
	return out, nil
}
