package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/varun8487/ai-ml/internal/analysis"
)

// Analysis represents one submitted PCOS analysis. Records are append-only:
// risk level is set once at creation and never mutated afterward.
type Analysis struct {
	ID            string
	UserID        string
	Age           int
	Weight        float64
	Height        float64
	Cycle         float64
	HairGrowth    bool
	SkinDarkening bool
	HairLoss      bool
	Pimples       bool
	BMI           float64
	RiskLevel     int
	CreatedAt     time.Time
}

// InsertAnalysis persists an analysis record and returns its generated id.
// BMI is recomputed from the stored height and weight when the caller left
// it unset, so the persisted value is always consistent with them.
func (db *DB) InsertAnalysis(ctx context.Context, a *Analysis) (string, error) {
	if a.BMI == 0 && a.Height > 0 && a.Weight > 0 {
		a.BMI = analysis.BMI(a.Weight, a.Height)
	}

	id := uuid.NewString()
	query := `
		INSERT INTO analyses (id, user_id, age, weight, height, cycle,
			hair_growth, skin_darkening, hair_loss, pimples, bmi, risk_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW())
	`

	_, err := db.ExecContext(ctx, query,
		id, a.UserID, a.Age, a.Weight, a.Height, a.Cycle,
		a.HairGrowth, a.SkinDarkening, a.HairLoss, a.Pimples, a.BMI, a.RiskLevel,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert analysis: %w", err)
	}

	a.ID = id
	return id, nil
}
