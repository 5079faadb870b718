package models

// MotorInstance is a deployed motor asset bound to one model and one device.
type MotorInstance struct {
	InstanceID  string `json:"instanceId,omitempty"`
	ModelID     string `json:"modelId"`
	DeviceID    string `json:"deviceId"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	InstallDate string `json:"installDate"` // YYYY-MM-DD
	AssetNumber string `json:"assetNumber"`
}

// Device is a telemetry source known to the remote system.
type Device struct {
	DeviceID string `json:"deviceId"`
	Name     string `json:"name"`
}
