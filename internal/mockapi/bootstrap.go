package mockapi

import (
	"context"
	"fmt"

	"motor_seeder/internal/catalog"
	"motor_seeder/internal/models"
)

// DefaultDevices are the PLCs the demo catalog maps parameters for.
func DefaultDevices() []models.Device {
	return []models.Device{
		{DeviceID: catalog.DeviceMotor001, Name: "Motor-001 Drive PLC"},
		{DeviceID: catalog.DeviceSimPLC001, Name: "Simulated PLC 001"},
	}
}

// Bootstrap makes sure the login user and the devices exist.
func Bootstrap(ctx context.Context, svc *Service, username, password string, devices []models.Device) error {
	if err := svc.EnsureUser(ctx, username, password); err != nil {
		return fmt.Errorf("ensure user %q: %w", username, err)
	}
	if err := svc.RegisterDevices(ctx, devices); err != nil {
		return fmt.Errorf("register devices: %w", err)
	}
	return nil
}
