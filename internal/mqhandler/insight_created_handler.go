package mqhandler

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"sitedesk/internal/models"
	"sitedesk/internal/mq"
	"sitedesk/internal/taxonomy"
	"sitedesk/pkg/metrics"
)

// InsightCreatedHandler stores AI insights published by the external
// analysis pipeline. The API never writes this table itself.
type InsightCreatedHandler struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewInsightCreatedHandler(db *gorm.DB, logger *zap.Logger) *InsightCreatedHandler {
	return &InsightCreatedHandler{db: db, logger: logger}
}

func (h *InsightCreatedHandler) HandleInsightCreated(ctx context.Context, raw json.RawMessage) error {
	var p mq.InsightCreatedPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		h.logger.Error("failed to unmarshal insight payload", zap.Error(err))
		metrics.IncrementInsightConsumed("invalid")
		return err
	}

	insightType := taxonomy.InsightType(p.InsightType)
	riskLevel := taxonomy.RiskLevel(p.RiskLevel)
	if !insightType.Valid() || !riskLevel.Valid() || p.Message == "" || p.ProjectID == 0 {
		h.logger.Warn("dropping invalid insight",
			zap.Uint("project_id", p.ProjectID),
			zap.String("insight_type", p.InsightType),
			zap.String("risk_level", p.RiskLevel),
		)
		metrics.IncrementInsightConsumed("invalid")
		return fmt.Errorf("invalid insight payload")
	}

	var sourceData string
	if p.SourceData != nil {
		if b, err := json.Marshal(p.SourceData); err == nil {
			sourceData = string(b)
		}
	}

	insight := models.AiInsight{
		ProjectID:   p.ProjectID,
		InsightType: insightType,
		Message:     p.Message,
		RiskLevel:   riskLevel,
		SourceData:  sourceData,
	}

	if err := h.db.WithContext(ctx).Create(&insight).Error; err != nil {
		h.logger.Error("failed to insert insight",
			zap.Uint("project_id", p.ProjectID),
			zap.Error(err),
		)
		metrics.IncrementInsightConsumed("failed")
		return err
	}

	h.logger.Info("insight stored",
		zap.Uint("project_id", p.ProjectID),
		zap.String("risk_level", p.RiskLevel),
	)
	metrics.IncrementInsightConsumed("success")
	return nil
}
