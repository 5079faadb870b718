package models

// ParameterMapping binds a diagnostic parameter code to a live telemetry tag.
type ParameterMapping struct {
	Parameter        int     `json:"parameter" yaml:"parameter"`
	TagID            string  `json:"tagId" yaml:"tagId"`
	ScaleFactor      float64 `json:"scaleFactor" yaml:"scaleFactor"`
	Offset           float64 `json:"offset" yaml:"offset"`
	UsedForDiagnosis bool    `json:"usedForDiagnosis" yaml:"usedForDiagnosis"`
}

// BatchResult is the reply of a batch mapping submission.
type BatchResult struct {
	Created int `json:"created"`
}
