package home

import (
	"go.uber.org/zap"
	"liyu1981.xyz/smart-home-service/pkg/common"
	"liyu1981.xyz/smart-home-service/pkg/models"
)

// recordAction writes one immutable log entry for an applied action. The
// device mutation is already committed when this runs, so a device deleted
// in between is not an error: the log write is skipped and the response
// stays successful.
func (h *Home) recordAction(deviceID uint, action string, value *float64) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryHomeAudit),
	)

	var device models.Device
	if err := h.Db.Conn.First(&device, deviceID).Error; err != nil {
		logger.Warn("Device not found at log time, skipping log entry",
			zap.Uint("device_id", deviceID),
			zap.String("action", action))
		return
	}

	entry := models.Log{
		DeviceID: deviceID,
		Action:   action,
		Value:    value,
	}

	if err := h.Db.Conn.Create(&entry).Error; err != nil {
		logger.Warn("Failed to write log entry",
			zap.Uint("device_id", deviceID),
			zap.Error(err))
		return
	}

	logger.Info("Logged action", zap.Reflect("log", entry))
}

func (h *Home) getDeviceLogs(deviceID uint) ([]models.Log, error) {
	var logs []models.Log
	err := h.Db.Conn.
		Where("device_id = ?", deviceID).
		Order("timestamp desc").
		Find(&logs).Error
	return logs, err
}

// getUserLogs returns log entries across all of a user's devices, newest
// first.
func (h *Home) getUserLogs(userID uint) ([]models.Log, error) {
	var logs []models.Log
	err := h.Db.Conn.
		Joins("JOIN devices ON devices.id = logs.device_id").
		Where("devices.user_id = ?", userID).
		Order("logs.timestamp desc").
		Find(&logs).Error
	return logs, err
}

type IAuditImpl struct {
	home *Home
}

func (ia *IAuditImpl) RecordAction(deviceID uint, action string, value *float64) {
	ia.home.recordAction(deviceID, action, value)
}

func (ia *IAuditImpl) GetDeviceLogs(deviceID uint) ([]models.Log, error) {
	return ia.home.getDeviceLogs(deviceID)
}

func (ia *IAuditImpl) GetUserLogs(userID uint) ([]models.Log, error) {
	return ia.home.getUserLogs(userID)
}

func (h *Home) GetIAudit() IAudit {
	return &IAuditImpl{home: h}
}
