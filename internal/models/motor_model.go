package models

// MotorModel is the reference specification of a motor type.
// Bearing geometry is optional and omitted from payloads when unset.
type MotorModel struct {
	ModelID                string   `json:"modelId,omitempty" yaml:"-"`
	Name                   string   `json:"name" yaml:"name"`
	Description            string   `json:"description" yaml:"description"`
	Type                   int      `json:"type" yaml:"type"`
	RatedPower             float64  `json:"ratedPower" yaml:"ratedPower"`         // kW
	RatedVoltage           float64  `json:"ratedVoltage" yaml:"ratedVoltage"`     // V
	RatedCurrent           float64  `json:"ratedCurrent" yaml:"ratedCurrent"`     // A
	RatedSpeed             float64  `json:"ratedSpeed" yaml:"ratedSpeed"`         // rpm
	RatedFrequency         float64  `json:"ratedFrequency" yaml:"ratedFrequency"` // Hz
	PolePairs              int      `json:"polePairs" yaml:"polePairs"`
	VfdModel               string   `json:"vfdModel,omitempty" yaml:"vfdModel"`
	BearingModel           string   `json:"bearingModel,omitempty" yaml:"bearingModel"`
	BearingRollingElements *int     `json:"bearingRollingElements,omitempty" yaml:"bearingRollingElements"`
	BearingBallDiameter    *float64 `json:"bearingBallDiameter,omitempty" yaml:"bearingBallDiameter"`   // mm
	BearingPitchDiameter   *float64 `json:"bearingPitchDiameter,omitempty" yaml:"bearingPitchDiameter"` // mm
	BearingContactAngle    *float64 `json:"bearingContactAngle,omitempty" yaml:"bearingContactAngle"`   // degrees
}
