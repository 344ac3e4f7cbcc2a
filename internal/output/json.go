package output

import (
	"encoding/json"

	"github.com/rgehrsitz/paygo/internal/domain"
)

// JSONFormatter emits the full result as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.Result) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
