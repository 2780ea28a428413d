package analysis

import "math"

// Recommendation is the tiered advice returned alongside a risk score
type Recommendation struct {
	Message string   `json:"message"`
	Steps   []string `json:"steps"`
	Urgency string   `json:"urgency"`
}

// BMI computes body mass index from weight in kg and height in cm,
// rounded to 2 decimal places. The same rounded value goes into the
// scoring request and the persisted record, so there is exactly one
// implementation of it.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*100) / 100
}

// RiskLevel maps a scorer probability to a discrete tier.
// Ties at exactly 70 or 40 fall into the lower tier.
func RiskLevel(probability float64) string {
	risk := probability * 100
	if risk > 70 {
		return "High"
	}
	if risk > 40 {
		return "Medium"
	}
	return "Low"
}

// Recommendations returns the fixed advice list for a probability's tier
func Recommendations(probability float64) Recommendation {
	risk := probability * 100

	if risk > 70 {
		return Recommendation{
			Message: "High risk detected. Please consult a healthcare provider.",
			Steps: []string{
				"Schedule an appointment with a gynecologist immediately",
				"Keep a detailed record of your symptoms",
				"Consider comprehensive hormonal testing",
				"Begin monitoring your diet and exercise routine",
				"Track your menstrual cycle carefully",
			},
			Urgency: "high",
		}
	}

	if risk > 40 {
		return Recommendation{
			Message: "Moderate risk detected. Monitor your symptoms.",
			Steps: []string{
				"Track your menstrual cycle regularly",
				"Maintain a balanced, healthy diet",
				"Exercise for at least 30 minutes daily",
				"Consult a healthcare provider if symptoms worsen",
				"Consider lifestyle modifications",
			},
			Urgency: "medium",
		}
	}

	return Recommendation{
		Message: "Low risk detected. Maintain healthy habits.",
		Steps: []string{
			"Continue maintaining a healthy lifestyle",
			"Schedule regular check-ups",
			"Monitor any changes in your cycle",
			"Stay active and maintain a balanced diet",
		},
		Urgency: "low",
	}
}
