package compare

import (
	"encoding/json"

	"github.com/rgehrsitz/mcfolio/internal/domain"
)

// JSONFormatter formats comparison results as JSON
type JSONFormatter struct {
	Pretty bool
	// IncludeSeries adds each mix's chart series keyed by mix name
	IncludeSeries bool
}

type jsonComparison struct {
	*ComparisonSet
	Series map[string]domain.ChartSeries `json:"series,omitempty"`
}

// Format generates JSON output for comparison results
func (jf *JSONFormatter) Format(compSet *ComparisonSet) (string, error) {
	payload := jsonComparison{ComparisonSet: compSet}
	if jf.IncludeSeries {
		payload.Series = make(map[string]domain.ChartSeries)
		for _, r := range compSet.All() {
			if r.Result != nil {
				payload.Series[r.MixName] = r.Result.Chart
			}
		}
	}

	var data []byte
	var err error
	if jf.Pretty {
		data, err = json.MarshalIndent(payload, "", "  ")
	} else {
		data, err = json.Marshal(payload)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}
