package analysis

import (
	"strconv"
)

// Submission is a validated analysis request with defaults applied
type Submission struct {
	UserID        string  `json:"userId"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	Cycle         float64 `json:"cycle"`
	HairGrowth    bool    `json:"hairGrowth"`
	SkinDarkening bool    `json:"skinDarkening"`
	HairLoss      bool    `json:"hairLoss"`
	Pimples       bool    `json:"pimples"`
}

// numericField describes one required numeric input and its valid range
type numericField struct {
	key         string
	min         float64
	max         float64
	requiredMsg string
	typeMsg     string
	minMsg      string
	maxMsg      string
}

var numericFields = []numericField{
	{
		key: "age", min: 0, max: 120,
		requiredMsg: "Age is required",
		typeMsg:     "Age must be a number",
		minMsg:      "Age must be greater than 0",
		maxMsg:      "Age must be less than 120",
	},
	{
		key: "weight", min: 20, max: 300,
		requiredMsg: "Weight is required",
		typeMsg:     "Weight must be a number",
		minMsg:      "Weight must be greater than 20 kg",
		maxMsg:      "Weight must be less than 300 kg",
	},
	{
		key: "height", min: 100, max: 250,
		requiredMsg: "Height is required",
		typeMsg:     "Height must be a number",
		minMsg:      "Height must be greater than 100 cm",
		maxMsg:      "Height must be less than 250 cm",
	},
	{
		key: "cycle", min: 0, max: 100,
		requiredMsg: "Cycle length is required",
		typeMsg:     "Cycle length must be a number",
		minMsg:      "Cycle length must be greater than 0",
		maxMsg:      "Cycle length must be less than 100 days",
	},
}

var symptomFields = []string{"hairGrowth", "skinDarkening", "hairLoss", "pimples"}

// Validate checks an untyped analysis request against the field constraints.
// It never stops at the first problem: the returned slice holds every
// violated-field message so the caller can report all of them at once.
// On success (nil slice) the Submission has symptom flags defaulted to false
// and userId defaulted to "anonymous".
func Validate(body map[string]interface{}) (Submission, []string) {
	var details []string
	values := make(map[string]float64, len(numericFields))

	for _, f := range numericFields {
		raw, present := body[f.key]
		if !present || raw == nil {
			details = append(details, f.requiredMsg)
			continue
		}

		n, ok := toNumber(raw)
		if !ok {
			details = append(details, f.typeMsg)
			continue
		}

		if n < f.min {
			details = append(details, f.minMsg)
			continue
		}
		if n > f.max {
			details = append(details, f.maxMsg)
			continue
		}
		values[f.key] = n
	}

	for _, key := range symptomFields {
		if raw, present := body[key]; present && raw != nil {
			if _, ok := raw.(bool); !ok {
				details = append(details, key+" must be a boolean")
			}
		}
	}

	if len(details) > 0 {
		return Submission{}, details
	}

	sub := Submission{
		UserID:        "anonymous",
		Age:           int(values["age"]),
		Weight:        values["weight"],
		Height:        values["height"],
		Cycle:         values["cycle"],
		HairGrowth:    boolOrFalse(body["hairGrowth"]),
		SkinDarkening: boolOrFalse(body["skinDarkening"]),
		HairLoss:      boolOrFalse(body["hairLoss"]),
		Pimples:       boolOrFalse(body["pimples"]),
	}
	if id, ok := body["userId"].(string); ok && id != "" {
		sub.UserID = id
	}
	return sub, nil
}

// toNumber accepts JSON numbers and numeric strings ("25" parses as 25)
func toNumber(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case string:
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func boolOrFalse(raw interface{}) bool {
	b, ok := raw.(bool)
	return ok && b
}
