package output

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// Formatter renders a simulation result in one output format
type Formatter interface {
	Name() string
	Format(result *domain.SimulationResult) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(result *domain.SimulationResult) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(result *domain.SimulationResult) ([]byte, error) {
	return f.F(result)
}

// formatterFactories builds a formatter for a currency code
var formatterFactories = map[string]func(currency string) Formatter{
	"console":           func(c string) Formatter { return ConsoleVerboseFormatter{Currency: c} },
	"console-lite":      func(c string) Formatter { return ConsoleFormatter{Currency: c} },
	"csv":               func(c string) Formatter { return CSVSummarizer{} },
	"detailed-csv":      func(c string) Formatter { return DetailedCSVFormatter{} },
	"json":              func(c string) Formatter { return JSONFormatter{Pretty: true} },
	"yaml":              func(c string) Formatter { return YAMLFormatter{} },
	"markdown":          func(c string) Formatter { return MarkdownFormatter{Currency: c} },
	"markdown-terminal": func(c string) Formatter { return MarkdownFormatter{Currency: c, Render: true} },
	"html":              func(c string) Formatter { return HTMLFormatter{Currency: c} },
	"pdf":               func(c string) Formatter { return PDFFormatter{Currency: c} },
}

var formatAliases = map[string]string{
	"verbose":         "console",
	"console-verbose": "console",
	"text":            "console-lite",
	"md":              "markdown",
	"glamour":         "markdown-terminal",
	"yml":             "yaml",
}

// GetFormatterByName returns the named formatter using the default currency,
// or nil if the name is unknown
func GetFormatterByName(name string) Formatter {
	return NewFormatter(name, DefaultCurrency)
}

// NewFormatter returns the named formatter rendering amounts in currency,
// or nil if the name is unknown
func NewFormatter(name, currency string) Formatter {
	key := strings.ToLower(strings.TrimSpace(name))
	if target, ok := formatAliases[key]; ok {
		key = target
	}
	factory, ok := formatterFactories[key]
	if !ok {
		return nil
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return factory(strings.ToUpper(currency))
}

// AvailableFormatterNames lists registered formatter names in sorted order
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatterFactories))
	for name := range formatterFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists accepted aliases in sorted order
func AvailableFormatAliases() []string {
	aliases := make([]string, 0, len(formatAliases))
	for alias := range formatAliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	return aliases
}

// FileExtension returns the conventional extension for a formatter
func FileExtension(f Formatter) string {
	switch f.Name() {
	case "csv", "detailed-csv":
		return "csv"
	case "json":
		return "json"
	case "yaml":
		return "yaml"
	case "markdown":
		return "md"
	case "html":
		return "html"
	case "pdf":
		return "pdf"
	default:
		return "txt"
	}
}

// WriteFormatted renders result and writes it to a timestamped file in the
// working directory, returning the file name
func WriteFormatted(f Formatter, result *domain.SimulationResult, ext string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", fmt.Errorf("failed to format %s report: %w", f.Name(), err)
	}
	filename := fmt.Sprintf("forecast_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
