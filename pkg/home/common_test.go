package home

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"liyu1981.xyz/smart-home-service/pkg/db"
	"liyu1981.xyz/smart-home-service/pkg/home/mocks"
	"liyu1981.xyz/smart-home-service/pkg/models"
)

func GetMockHomeWithMemorySqliteDialector(t *testing.T, useMockDevice, useMockAction, useMockAudit bool) (
	*gomock.Controller,
	*Home,
	*mocks.MockIDevice,
	*mocks.MockIAction,
	*mocks.MockIAudit,
) {
	ctrl := gomock.NewController(t)

	mockIDevice := mocks.NewMockIDevice(ctrl)
	mockIAction := mocks.NewMockIAction(ctrl)
	mockIAudit := mocks.NewMockIAudit(ctrl)
	dialector := db.UseMemorySqliteDialector()
	dbInstance := db.GetInstance(dialector) // ensure migrations
	homeInstance := &Home{Db: *dbInstance}

	deviceService := homeInstance.GetIDevice()
	if useMockDevice {
		deviceService = mockIDevice
	}

	actionService := homeInstance.GetIAction()
	if useMockAction {
		actionService = mockIAction
	}

	auditService := homeInstance.GetIAudit()
	if useMockAudit {
		auditService = mockIAudit
	}

	homeInstance.WithServices(ServiceOpts{
		Device:      deviceService,
		Action:      actionService,
		Audit:       auditService,
		User:        homeInstance.GetIUser(),
		Interpreter: NewInterpreter(nil),
	})

	return ctrl, homeInstance, mockIDevice, mockIAction, mockIAudit
}

func createTestUser(t *testing.T, h *Home) *models.User {
	t.Helper()
	user := models.User{Username: uuid.NewString(), PasswordHash: "x"}
	require.NoError(t, h.Db.Conn.Create(&user).Error)
	return &user
}

func createTestDevice(t *testing.T, h *Home, userID uint, name, deviceType, status string) *models.Device {
	t.Helper()
	device := models.Device{
		UserID:     userID,
		Name:       name,
		DeviceType: deviceType,
		Status:     status,
	}
	require.NoError(t, h.Db.Conn.Create(&device).Error)
	return &device
}

func countDeviceLogs(t *testing.T, h *Home, deviceID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, h.Db.Conn.Model(&models.Log{}).Where("device_id = ?", deviceID).Count(&count).Error)
	return count
}
