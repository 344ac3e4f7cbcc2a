package compare

import (
	"encoding/json"

	"github.com/rgehrsitz/paygo/internal/domain"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool

	// Detailed embeds each city's full calculation result
	Detailed bool
}

type detailedSet struct {
	*ComparisonSet
	Results map[string]*domain.Result `json:"results"`
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	var v any = compSet
	if jf.Detailed {
		results := make(map[string]*domain.Result, len(compSet.AlternativeResults)+1)
		if compSet.BaseResult != nil {
			results[compSet.BaseResult.CityCode] = compSet.BaseResult.Result
		}
		for _, alt := range compSet.AlternativeResults {
			results[alt.CityCode] = alt.Result
		}
		v = detailedSet{ComparisonSet: compSet, Results: results}
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(v, "", "  ")
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}
