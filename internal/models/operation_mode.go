package models

// OperationMode is an operating regime detected when the trigger tag stays
// within [TriggerMinValue, TriggerMaxValue) for at least MinDurationMs.
// Lower Priority wins when triggers overlap.
type OperationMode struct {
	Name            string  `json:"name" yaml:"name"`
	Description     string  `json:"description" yaml:"description"`
	TriggerTagID    string  `json:"triggerTagId" yaml:"triggerTagId"`
	TriggerMinValue float64 `json:"triggerMinValue" yaml:"triggerMinValue"`
	TriggerMaxValue float64 `json:"triggerMaxValue" yaml:"triggerMaxValue"`
	MinDurationMs   int64   `json:"minDurationMs" yaml:"minDurationMs"`
	MaxDurationMs   int64   `json:"maxDurationMs" yaml:"maxDurationMs"` // 0 = unbounded
	Priority        int     `json:"priority" yaml:"priority"`
}
