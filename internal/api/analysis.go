package api

import (
	"context"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/varun8487/ai-ml/internal/analysis"
	"github.com/varun8487/ai-ml/internal/db"
	"github.com/varun8487/ai-ml/pkg/mlservice"
)

// AnalysisStore persists scored analysis records
type AnalysisStore interface {
	InsertAnalysis(ctx context.Context, a *db.Analysis) (string, error)
}

// AnalysisHandler handles the analysis API endpoint
type AnalysisHandler struct {
	store        AnalysisStore
	scorer       mlservice.Client
	logger       *zap.Logger
	exposeErrors bool
}

// NewAnalysisHandler creates a new analysis handler. exposeErrors controls
// whether failure detail is included in 500 responses (off in production).
func NewAnalysisHandler(store AnalysisStore, scorer mlservice.Client, logger *zap.Logger, exposeErrors bool) *AnalysisHandler {
	return &AnalysisHandler{
		store:        store,
		scorer:       scorer,
		logger:       logger,
		exposeErrors: exposeErrors,
	}
}

// Analyze runs the full analysis pipeline: validate, compute BMI, score via
// the ML service, persist, shape the response.
// POST /analyze
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation error",
			"details": []string{"Request body must be valid JSON"},
		})
		return
	}

	sub, details := analysis.Validate(body)
	if details != nil {
		h.logger.Warn("analysis validation failed", zap.Strings("details", details))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation error",
			"details": details,
		})
		return
	}

	bmi := analysis.BMI(sub.Weight, sub.Height)

	prediction, err := h.scorer.Predict(c.Request.Context(), mlservice.PredictionRequest{
		Age:           sub.Age,
		Weight:        sub.Weight,
		Height:        sub.Height,
		Cycle:         sub.Cycle,
		HairGrowth:    sub.HairGrowth,
		SkinDarkening: sub.SkinDarkening,
		HairLoss:      sub.HairLoss,
		Pimples:       sub.Pimples,
		BMI:           bmi,
	})
	if err != nil {
		h.fail(c, "scoring failed", err)
		return
	}

	risk := int(math.Round(prediction.Probability * 100))

	record := &db.Analysis{
		UserID:        sub.UserID,
		Age:           sub.Age,
		Weight:        sub.Weight,
		Height:        sub.Height,
		Cycle:         sub.Cycle,
		HairGrowth:    sub.HairGrowth,
		SkinDarkening: sub.SkinDarkening,
		HairLoss:      sub.HairLoss,
		Pimples:       sub.Pimples,
		BMI:           bmi,
		RiskLevel:     risk,
	}
	if _, err := h.store.InsertAnalysis(c.Request.Context(), record); err != nil {
		h.fail(c, "persistence failed", err)
		return
	}

	h.logger.Info("analysis saved",
		zap.String("id", record.ID),
		zap.Int("risk", risk),
		zap.Float64("bmi", bmi),
	)

	c.JSON(http.StatusOK, gin.H{
		"risk":            risk,
		"bmi":             bmi,
		"riskLevel":       analysis.RiskLevel(prediction.Probability),
		"recommendations": analysis.Recommendations(prediction.Probability),
	})
}

func (h *AnalysisHandler) fail(c *gin.Context, stage string, err error) {
	h.logger.Error("analysis failed", zap.String("stage", stage), zap.Error(err))

	resp := gin.H{"error": "Analysis failed"}
	if h.exposeErrors {
		resp["message"] = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}
