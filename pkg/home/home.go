package home

import (
	"context"

	"liyu1981.xyz/smart-home-service/pkg/db"
	"liyu1981.xyz/smart-home-service/pkg/models"
)

type IDevice interface {
	CreateDevice(userID uint, input *models.Device) error
	GetDevice(userID uint, deviceID uint) (*models.Device, error)
	ListDevices(userID uint) ([]models.Device, error)
	UpdateDevice(userID uint, deviceID uint, name string, deviceType string) (*models.Device, error)
	DeleteDevice(userID uint, deviceID uint) error
	FindDeviceByName(userID uint, name string) (*models.Device, error)
}

type IAction interface {
	ApplyAction(device *models.Device, action string, value any) error
}

type IAudit interface {
	RecordAction(deviceID uint, action string, value *float64)
	GetDeviceLogs(deviceID uint) ([]models.Log, error)
	GetUserLogs(userID uint) ([]models.Log, error)
}

type IUser interface {
	Register(username string, password string) (*models.User, error)
	Authenticate(username string, password string) (*models.User, error)
	GetUser(userID uint) (*models.User, error)
	RevokeToken(tokenID string, expiresAt int64) error
	IsTokenRevoked(tokenID string) bool
}

type IInterpreter interface {
	ParseCommand(ctx context.Context, command string) *models.ParsedCommand
}

type Home struct {
	Db          db.DB
	Device      IDevice
	Action      IAction
	Audit       IAudit
	User        IUser
	Interpreter IInterpreter
}

type ServiceOpts struct {
	Device      IDevice
	Action      IAction
	Audit       IAudit
	User        IUser
	Interpreter IInterpreter
}

func (h *Home) WithServices(opts ServiceOpts) *Home {
	if opts.Device != nil {
		h.Device = opts.Device
	}
	if opts.Action != nil {
		h.Action = opts.Action
	}
	if opts.Audit != nil {
		h.Audit = opts.Audit
	}
	if opts.User != nil {
		h.User = opts.User
	}
	if opts.Interpreter != nil {
		h.Interpreter = opts.Interpreter
	}
	return h
}
