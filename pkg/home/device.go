package home

import (
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"liyu1981.xyz/smart-home-service/pkg/common"
	"liyu1981.xyz/smart-home-service/pkg/models"
)

func (h *Home) createDevice(userID uint, input *models.Device) error {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryHomeDevice),
	)

	device := models.Device{
		UserID:     userID,
		Name:       input.Name,
		DeviceType: input.DeviceType,
		Status:     input.Status,
	}
	if device.Status == "" {
		device.Status = "off"
	}

	if err := h.Db.Conn.Create(&device).Error; err != nil {
		return err
	}

	*input = device

	logger.Info("Created device", zap.Reflect("device", device))
	return nil
}

func (h *Home) getDevice(userID uint, deviceID uint) (*models.Device, error) {
	var device models.Device
	err := h.Db.Conn.
		Where("id = ? AND user_id = ?", deviceID, userID).
		First(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

func (h *Home) listDevices(userID uint) ([]models.Device, error) {
	var devices []models.Device
	err := h.Db.Conn.
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&devices).Error
	return devices, err
}

// updateDevice changes name and type only. Status is owned by the action
// applier and cannot be written through here.
func (h *Home) updateDevice(userID uint, deviceID uint, name string, deviceType string) (*models.Device, error) {
	device, err := h.getDevice(userID, deviceID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{"name": name, "device_type": deviceType}
	if err := h.Db.Conn.Model(device).Updates(updates).Error; err != nil {
		return nil, err
	}

	return device, nil
}

func (h *Home) deleteDevice(userID uint, deviceID uint) error {
	device, err := h.getDevice(userID, deviceID)
	if err != nil {
		return err
	}
	// delete the device's logs in the same pass; sqlite enforces FK
	// cascades per connection, so do not rely on the pragma
	return h.Db.Conn.Select(clause.Associations).Delete(device).Error
}

// findDeviceByName resolves an assistant-supplied device name for one user.
// Matching is case-insensitive and exact; no fuzzy fallback, the first row
// wins like the original lookup.
func (h *Home) findDeviceByName(userID uint, name string) (*models.Device, error) {
	var device models.Device
	err := h.Db.Conn.
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		First(&device).Error
	if err != nil {
		return nil, err
	}
	return &device, nil
}

type IDeviceImpl struct {
	home *Home
}

func (id *IDeviceImpl) CreateDevice(userID uint, input *models.Device) error {
	return id.home.createDevice(userID, input)
}

func (id *IDeviceImpl) GetDevice(userID uint, deviceID uint) (*models.Device, error) {
	return id.home.getDevice(userID, deviceID)
}

func (id *IDeviceImpl) ListDevices(userID uint) ([]models.Device, error) {
	return id.home.listDevices(userID)
}

func (id *IDeviceImpl) UpdateDevice(userID uint, deviceID uint, name string, deviceType string) (*models.Device, error) {
	return id.home.updateDevice(userID, deviceID, name, deviceType)
}

func (id *IDeviceImpl) DeleteDevice(userID uint, deviceID uint) error {
	return id.home.deleteDevice(userID, deviceID)
}

func (id *IDeviceImpl) FindDeviceByName(userID uint, name string) (*models.Device, error) {
	return id.home.findDeviceByName(userID, name)
}

func (h *Home) GetIDevice() IDevice {
	return &IDeviceImpl{home: h}
}
