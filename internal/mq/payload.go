package mq

// InsightCreatedPayload is the contract with the external analysis
// pipeline that publishes on RouteInsightCreated.
type InsightCreatedPayload struct {
	ProjectID   uint                   `json:"project_id"`
	InsightType string                 `json:"insight_type"`
	Message     string                 `json:"message"`
	RiskLevel   string                 `json:"risk_level"`
	SourceData  map[string]interface{} `json:"source_data,omitempty"`
}
