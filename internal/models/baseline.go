package models

import "time"

// LearningWindow is the time range submitted for baseline learning,
// in milliseconds since the Unix epoch.
type LearningWindow struct {
	StartTs int64 `json:"startTs"`
	EndTs   int64 `json:"endTs"`
}

// NewLearningWindow returns the window [end-lookback, end].
func NewLearningWindow(end time.Time, lookback time.Duration) LearningWindow {
	endTs := end.UnixMilli()
	return LearningWindow{
		StartTs: endTs - lookback.Milliseconds(),
		EndTs:   endTs,
	}
}

// InstanceDetail is the aggregated read view of a motor instance.
type InstanceDetail struct {
	Model         *MotorModel        `json:"model"`
	Mappings      []ParameterMapping `json:"mappings"`
	Modes         []OperationMode    `json:"modes"`
	BaselineCount int                `json:"baselineCount"`
}

// DiagnosisResult carries the remote-computed health score.
type DiagnosisResult struct {
	HealthScore *float64 `json:"healthScore"`
}
