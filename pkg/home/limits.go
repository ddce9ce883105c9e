package home

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"liyu1981.xyz/smart-home-service/pkg/models"
)

type DeviceLimit struct {
	Min  float64
	Max  float64
	Unit string
}

// deviceLimits maps a lower-cased device type to its accepted value range.
// Loaded once, never mutated at runtime. Types absent here are unconstrained.
var deviceLimits = map[string]DeviceLimit{
	"thermostat": {Min: 16, Max: 32, Unit: "°C"},
	"ac":         {Min: 16, Max: 30, Unit: "°C"},
	"heater":     {Min: 18, Max: 35, Unit: "°C"},
	"fan":        {Min: 0, Max: 5, Unit: "speed"},
}

// GetDeviceLimit returns the limit entry for a device type, if one exists.
func GetDeviceLimit(deviceType string) (DeviceLimit, bool) {
	limit, ok := deviceLimits[strings.ToLower(deviceType)]
	return limit, ok
}

// CoerceValue attempts to read a numeric value out of whatever the request
// body or the language model handed us. The interpreter's output is untrusted,
// so numbers may arrive as json.Number, float64 or a numeric string.
func CoerceValue(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// ValidateDeviceValue checks a value against the device type's limit entry.
// It returns a RejectionError describing why the value is unacceptable, or
// nil when the value passes. Unknown device types accept any numeric value.
func ValidateDeviceValue(device *models.Device, value any) error {
	v, ok := CoerceValue(value)
	if !ok {
		return &RejectionError{Reason: "Invalid value: must be a number"}
	}

	limit, constrained := GetDeviceLimit(device.DeviceType)
	if !constrained {
		return nil
	}

	if v < limit.Min || v > limit.Max {
		return &RejectionError{
			Reason: fmt.Sprintf("%s %s must be between %v and %v", device.Name, limit.Unit, limit.Min, limit.Max),
		}
	}

	return nil
}
