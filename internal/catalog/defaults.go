package catalog

import "motor_seeder/internal/models"

// Demo device ids with a mapping table entry.
const (
	DeviceMotor001  = "Motor-001"
	DeviceSimPLC001 = "SIM-PLC-001"
)

// Tag ids published by the demo PLC.
const (
	tagTemp    = "Motor1_Temp"
	tagCurrent = "Motor1_Current"
	tagSpeed   = "Motor1_Speed"
	tagRunning = "Motor1_Running"
	tagTorque  = "Torque"
)

// Parameter codes understood by the diagnostics engine.
const (
	paramCurrent     = 3
	paramTorque      = 20
	paramSpeed       = 21
	paramRunning     = 34
	paramTemperature = 40
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

// Default returns the built-in demo catalog.
func Default() *Catalog {
	return &Catalog{
		Models: []models.MotorModel{
			{
				Name:                   "Standard Induction Motor 15kW",
				Description:            "Three-phase induction motor for industrial drive",
				Type:                   0,
				RatedPower:             15.0,
				RatedVoltage:           380,
				RatedCurrent:           30,
				RatedSpeed:             1480,
				RatedFrequency:         50,
				PolePairs:              2,
				VfdModel:               "ABB ACS580",
				BearingModel:           "SKF 6308",
				BearingRollingElements: intPtr(8),
				BearingBallDiameter:    floatPtr(15.875),
				BearingPitchDiameter:   floatPtr(58.5),
				BearingContactAngle:    floatPtr(0),
			},
			{
				Name:           "VFD Motor 7.5kW",
				Description:    "Variable frequency drive motor",
				Type:           0,
				RatedPower:     7.5,
				RatedVoltage:   380,
				RatedCurrent:   15,
				RatedSpeed:     1450,
				RatedFrequency: 50,
				PolePairs:      2,
				VfdModel:       "Siemens G120",
				BearingModel:   "SKF 6206",
			},
		},
		Instances: []InstanceTemplate{
			{
				Model:       "Standard Induction Motor 15kW",
				ModelSlot:   0,
				DeviceID:    DeviceMotor001,
				Name:        "Main Drive Motor #1",
				Location:    "Workshop A - Line 1",
				InstallDate: "2024-01-15",
				AssetNumber: "MTR-2024-001",
			},
			{
				Model:       "VFD Motor 7.5kW",
				ModelSlot:   1,
				DeviceID:    DeviceSimPLC001,
				Name:        "Auxiliary Motor #2",
				Location:    "Workshop A - Line 2",
				InstallDate: "2024-03-20",
				AssetNumber: "MTR-2024-002",
			},
		},
		Mappings: map[string][]models.ParameterMapping{
			DeviceMotor001: {
				{Parameter: paramTemperature, TagID: tagTemp, ScaleFactor: 1.0, UsedForDiagnosis: true},
				{Parameter: paramCurrent, TagID: tagCurrent, ScaleFactor: 1.0, UsedForDiagnosis: true},
				{Parameter: paramSpeed, TagID: tagSpeed, ScaleFactor: 30, UsedForDiagnosis: true},
				{Parameter: paramTorque, TagID: tagTorque, ScaleFactor: 1.0, UsedForDiagnosis: true},
			},
			DeviceSimPLC001: {
				{Parameter: paramTemperature, TagID: tagTemp, ScaleFactor: 1.0, UsedForDiagnosis: true},
				{Parameter: paramCurrent, TagID: tagCurrent, ScaleFactor: 1.0, UsedForDiagnosis: true},
				{Parameter: paramSpeed, TagID: tagSpeed, ScaleFactor: 30, UsedForDiagnosis: true},
				{Parameter: paramRunning, TagID: tagRunning, ScaleFactor: 1.0, UsedForDiagnosis: false},
			},
		},
		Modes: []models.OperationMode{
			{
				Name:            "Normal Operation",
				Description:     "Motor running at normal speed",
				TriggerTagID:    tagSpeed,
				TriggerMinValue: 30,
				TriggerMaxValue: 60,
				MinDurationMs:   5000,
				Priority:        1,
			},
			{
				Name:            "Low Speed",
				Description:     "Motor running at low speed",
				TriggerTagID:    tagSpeed,
				TriggerMinValue: 10,
				TriggerMaxValue: 30,
				MinDurationMs:   3000,
				Priority:        2,
			},
			{
				Name:            "Idle/Standby",
				Description:     "Motor idle or standby",
				TriggerTagID:    tagSpeed,
				TriggerMinValue: 0,
				TriggerMaxValue: 10,
				MinDurationMs:   2000,
				Priority:        3,
			},
		},
	}
}
