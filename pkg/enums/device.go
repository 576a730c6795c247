package enums

import "fmt"

// Device identifies the client platform an end user registered from.
type Device string

const (
	DeviceAndroid Device = "Android"
	DeviceIOS     Device = "iOS"
)

var validDevices = []Device{
	DeviceAndroid,
	DeviceIOS,
}

// String returns the literal string for the device.
func (d Device) String() string {
	return string(d)
}

// IsValid reports whether the device is known.
func (d Device) IsValid() bool {
	for _, candidate := range validDevices {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDevice converts raw input into a Device.
func ParseDevice(value string) (Device, error) {
	for _, candidate := range validDevices {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid device %q", value)
}
