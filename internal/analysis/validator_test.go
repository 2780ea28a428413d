package analysis

import (
	"testing"
)

func TestValidateAcceptsValidInput(t *testing.T) {
	body := map[string]interface{}{
		"age":        float64(25),
		"weight":     float64(70),
		"height":     float64(175),
		"cycle":      float64(28),
		"hairGrowth": true,
		"userId":     "user-123",
	}

	sub, details := Validate(body)
	if details != nil {
		t.Fatalf("expected no validation errors, got %v", details)
	}
	if sub.Age != 25 || sub.Weight != 70 || sub.Height != 175 || sub.Cycle != 28 {
		t.Fatalf("unexpected normalized values: %+v", sub)
	}
	if !sub.HairGrowth {
		t.Error("expected hairGrowth to be true")
	}
	if sub.SkinDarkening || sub.HairLoss || sub.Pimples {
		t.Errorf("expected omitted symptoms to default to false, got %+v", sub)
	}
	if sub.UserID != "user-123" {
		t.Errorf("expected userId user-123, got %s", sub.UserID)
	}
}

func TestValidateDefaultsUserID(t *testing.T) {
	body := map[string]interface{}{
		"age":    float64(30),
		"weight": float64(60),
		"height": float64(160),
		"cycle":  float64(30),
	}

	sub, details := Validate(body)
	if details != nil {
		t.Fatalf("expected no validation errors, got %v", details)
	}
	if sub.UserID != "anonymous" {
		t.Errorf("expected anonymous userId, got %s", sub.UserID)
	}
}

func TestValidateAcceptsNumericStrings(t *testing.T) {
	body := map[string]interface{}{
		"age":    "25",
		"weight": "70.5",
		"height": "175",
		"cycle":  "28",
	}

	sub, details := Validate(body)
	if details != nil {
		t.Fatalf("expected no validation errors, got %v", details)
	}
	if sub.Weight != 70.5 {
		t.Errorf("expected weight 70.5, got %v", sub.Weight)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	body := map[string]interface{}{
		"age":    float64(-5),
		"weight": float64(10),
		"height": float64(50),
		"cycle":  float64(200),
	}

	_, details := Validate(body)
	if len(details) != 4 {
		t.Fatalf("expected 4 distinct messages, got %d: %v", len(details), details)
	}

	expected := []string{
		"Age must be greater than 0",
		"Weight must be greater than 20 kg",
		"Height must be greater than 100 cm",
		"Cycle length must be less than 100 days",
	}
	for i, msg := range expected {
		if details[i] != msg {
			t.Errorf("detail %d: expected %q, got %q", i, msg, details[i])
		}
	}
}

func TestValidateRequiredAndTypeErrors(t *testing.T) {
	body := map[string]interface{}{
		"weight": "heavy",
		"height": float64(300),
		"cycle":  float64(28),
	}

	_, details := Validate(body)
	if len(details) != 3 {
		t.Fatalf("expected 3 messages, got %d: %v", len(details), details)
	}

	expected := []string{
		"Age is required",
		"Weight must be a number",
		"Height must be less than 250 cm",
	}
	for i, msg := range expected {
		if details[i] != msg {
			t.Errorf("detail %d: expected %q, got %q", i, msg, details[i])
		}
	}
}

func TestValidateBoundaryValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value float64
		valid bool
	}{
		{"age at min", "age", 0, true},
		{"age at max", "age", 120, true},
		{"age above max", "age", 121, false},
		{"weight at min", "weight", 20, true},
		{"weight below min", "weight", 19.9, false},
		{"height at max", "height", 250, true},
		{"cycle at max", "cycle", 100, true},
		{"cycle above max", "cycle", 100.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := map[string]interface{}{
				"age":    float64(25),
				"weight": float64(70),
				"height": float64(175),
				"cycle":  float64(28),
			}
			body[tt.key] = tt.value

			_, details := Validate(body)
			if tt.valid && details != nil {
				t.Errorf("expected %v to be valid, got %v", tt.value, details)
			}
			if !tt.valid && details == nil {
				t.Errorf("expected %v to be rejected", tt.value)
			}
		})
	}
}

func TestValidateRejectsNonBooleanSymptom(t *testing.T) {
	body := map[string]interface{}{
		"age":        float64(25),
		"weight":     float64(70),
		"height":     float64(175),
		"cycle":      float64(28),
		"hairGrowth": "yes",
	}

	_, details := Validate(body)
	if len(details) != 1 || details[0] != "hairGrowth must be a boolean" {
		t.Fatalf("expected boolean type error, got %v", details)
	}
}
