package home

import (
	"strconv"

	"go.uber.org/zap"
	"liyu1981.xyz/smart-home-service/pkg/common"
	"liyu1981.xyz/smart-home-service/pkg/models"
)

const (
	ActionTurnOn         = "turn_on"
	ActionTurnOff        = "turn_off"
	ActionSetTemperature = "set_temperature"
	ActionSetSpeed       = "set_speed"
)

// RejectionError is an action or value the caller is not allowed to apply.
// It is a client error, never a storage failure.
type RejectionError struct {
	Reason string
}

func (e *RejectionError) Error() string {
	return e.Reason
}

// applyDeviceAction is the single mutation gateway for device status. Every
// entry path, structured or assistant, must come through here. On success the
// new status is committed and the action is handed to the audit service.
func (h *Home) applyDeviceAction(device *models.Device, action string, value any) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryHomeAction),
	)

	var newStatus string

	switch {
	case action == ActionTurnOn:
		newStatus = "on"

	case action == ActionTurnOff:
		newStatus = "off"

	case (action == ActionSetTemperature || action == ActionSetSpeed) && value != nil:
		if err := ValidateDeviceValue(device, value); err != nil {
			logger.Info("Rejected action for device",
				zap.Uint("device_id", device.ID),
				zap.String("action", action),
				zap.String("reason", err.Error()))
			return err
		}
		v, _ := CoerceValue(value)
		newStatus = strconv.FormatFloat(v, 'f', -1, 64)

	default:
		return &RejectionError{Reason: "Invalid action or missing value"}
	}

	// Single column update so concurrent readers only ever see the old or the
	// new status, never anything in between.
	device.Status = newStatus
	if err := h.Db.Conn.Model(device).Update("status", newStatus).Error; err != nil {
		return err
	}

	logger.Info("Applied action to device",
		zap.Uint("device_id", device.ID),
		zap.String("action", action),
		zap.String("new_status", newStatus))

	var loggedValue *float64
	if v, ok := CoerceValue(value); ok {
		loggedValue = &v
	}

	if h.Audit != nil {
		h.Audit.RecordAction(device.ID, action, loggedValue)
	}

	return nil
}

type IActionImpl struct {
	home *Home
}

func (ia *IActionImpl) ApplyAction(device *models.Device, action string, value any) error {
	return ia.home.applyDeviceAction(device, action, value)
}

func (h *Home) GetIAction() IAction {
	return &IActionImpl{home: h}
}
