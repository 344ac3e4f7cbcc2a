package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rgehrsitz/paygo/internal/domain"
)

// Formatter renders a calculation result into a byte representation.
type Formatter interface {
	Name() string
	Format(result *domain.Result) ([]byte, error)
}

// FormatterFunc adapts a plain function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(result *domain.Result) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(result *domain.Result) ([]byte, error) { return f.F(result) }

var formatters = map[string]Formatter{
	"console":      ConsoleFormatter{},
	"console-lite": ConsoleLiteFormatter{},
	"json":         JSONFormatter{},
	"csv":          CSVFormatter{},
	"html":         HTMLFormatter{},
	"xlsx":         XLSXFormatter{},
}

var aliases = map[string]string{
	"text":    "console",
	"verbose": "console",
	"summary": "console-lite",
	"excel":   "xlsx",
}

// GetFormatterByName returns the formatter registered under name or alias, or
// nil when there is none.
func GetFormatterByName(name string) Formatter {
	if target, ok := aliases[name]; ok {
		name = target
	}
	return formatters[name]
}

// AvailableFormatterNames lists registered formatter names in sorted order.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists accepted alias names in sorted order.
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extension returns the file extension used when a formatter's output is
// written to disk.
func Extension(f Formatter) string {
	switch f.Name() {
	case "console", "console-lite":
		return "txt"
	default:
		return f.Name()
	}
}

// WriteFormatted formats result and writes it to a timestamped file in dir.
// It returns the path that was written.
func WriteFormatted(f Formatter, result *domain.Result, dir string) (string, error) {
	data, err := f.Format(result)
	if err != nil {
		return "", fmt.Errorf("failed to format result as %s: %w", f.Name(), err)
	}

	filename := filepath.Join(dir, fmt.Sprintf("paygo_report_%s.%s", time.Now().Format("20060102_150405"), Extension(f)))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}
