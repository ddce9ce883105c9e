package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"liyu1981.xyz/smart-home-service/pkg/auth"
	"liyu1981.xyz/smart-home-service/pkg/common"
	"liyu1981.xyz/smart-home-service/pkg/home"
	"liyu1981.xyz/smart-home-service/pkg/models"
)

type DeviceResponse struct {
	ID         uint   `json:"id"`
	User       string `json:"user"`
	Name       string `json:"name"`
	DeviceType string `json:"device_type"`
	Status     string `json:"status"`
}

func deviceResponse(device models.Device, username string) DeviceResponse {
	return DeviceResponse{
		ID:         device.ID,
		User:       username,
		Name:       device.Name,
		DeviceType: device.DeviceType,
		Status:     device.Status,
	}
}

func deviceIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("device_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
		return 0, false
	}
	return uint(id), true
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

var credentialsRequestSchema = z.Struct(z.Shape{
	"Username": z.String().Min(1).Required(),
	"Password": z.String().Min(1).Required(),
})

func (rs *RestfulServer) Register(c *gin.Context) {
	var req CredentialsRequest
	if err := credentialsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Home.User.Register(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already taken"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "User registered",
		"username": user.Username,
	})
}

func (rs *RestfulServer) Login(c *gin.Context) {
	var req CredentialsRequest
	if err := credentialsRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	user, err := rs.Home.User.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	pair, err := auth.GenerateTokenPair(user.ID, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, pair)
}

type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

var refreshRequestSchema = z.Struct(z.Shape{
	"Refresh": z.String().Min(1).Required(),
})

func (rs *RestfulServer) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := refreshRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token required"})
		return
	}

	claims, err := auth.ValidateToken(req.Refresh, auth.TokenTypeRefresh)
	if err != nil || rs.Home.User.IsTokenRevoked(claims.ID) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	pair, err := auth.GenerateTokenPair(claims.UserID, claims.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access": pair.Access})
}

// Logout blacklists the presented refresh token. Devices keep working until
// the current access token expires.
func (rs *RestfulServer) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := refreshRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token required"})
		return
	}

	claims, err := auth.ValidateToken(req.Refresh, auth.TokenTypeRefresh)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Logout failed: invalid refresh token"})
		return
	}

	if err := rs.Home.User.RevokeToken(claims.ID, claims.ExpiresAt.Unix()); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Logout failed: token already revoked"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully logged out",
		"note":    "Your devices will remain connected until the current session expires",
	})
}

type DeviceRequest struct {
	Name       string `json:"name"`
	DeviceType string `json:"device_type"`
	Status     string `json:"status"`
}

var deviceRequestSchema = z.Struct(z.Shape{
	"Name":       z.String().Min(1).Required(),
	"DeviceType": z.String().Min(1).Required(),
	"Status":     z.String(),
})

func (rs *RestfulServer) ListDevices(c *gin.Context) {
	devices, err := rs.Home.Device.ListDevices(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	username := currentUsername(c)
	c.JSON(http.StatusOK, common.Mapper(devices, func(d models.Device) DeviceResponse {
		return deviceResponse(d, username)
	}))
}

func (rs *RestfulServer) CreateDevice(c *gin.Context) {
	var req DeviceRequest
	if err := deviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device := models.Device{
		Name:       req.Name,
		DeviceType: req.DeviceType,
		Status:     req.Status,
	}
	if err := rs.Home.Device.CreateDevice(currentUserID(c), &device); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusCreated, deviceResponse(device, currentUsername(c)))
}

func (rs *RestfulServer) GetDevice(c *gin.Context) {
	deviceID, ok := deviceIDParam(c)
	if !ok {
		return
	}

	device, err := rs.Home.Device.GetDevice(currentUserID(c), deviceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
		return
	}

	c.JSON(http.StatusOK, deviceResponse(*device, currentUsername(c)))
}

func (rs *RestfulServer) UpdateDevice(c *gin.Context) {
	deviceID, ok := deviceIDParam(c)
	if !ok {
		return
	}

	var req DeviceRequest
	if err := deviceRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device, err := rs.Home.Device.UpdateDevice(currentUserID(c), deviceID, req.Name, req.DeviceType)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
		} else {
			c.JSON(http.StatusInternalServerError, err)
		}
		return
	}

	c.JSON(http.StatusOK, deviceResponse(*device, currentUsername(c)))
}

func (rs *RestfulServer) DeleteDevice(c *gin.Context) {
	deviceID, ok := deviceIDParam(c)
	if !ok {
		return
	}

	if err := rs.Home.Device.DeleteDevice(currentUserID(c), deviceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
		} else {
			c.JSON(http.StatusInternalServerError, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

type ControlRequest struct {
	Action string   `json:"action"`
	Value  *float64 `json:"value"`
}

var controlRequestSchema = z.Struct(z.Shape{
	"Action": z.String().Min(1).Required(),
	"Value":  z.Ptr(z.Float64()),
})

// ControlDevice is the structured entry path: the device is addressed by id
// and the action comes straight from the request body.
func (rs *RestfulServer) ControlDevice(c *gin.Context) {
	deviceID, ok := deviceIDParam(c)
	if !ok {
		return
	}

	var req ControlRequest
	if err := controlRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	device, err := rs.Home.Device.GetDevice(currentUserID(c), deviceID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
		return
	}

	var value any
	if req.Value != nil {
		value = *req.Value
	}

	if err := rs.Home.Action.ApplyAction(device, req.Action, value); err != nil {
		var rejection *home.RejectionError
		if errors.As(err, &rejection) {
			c.JSON(http.StatusBadRequest, gin.H{"error": rejection.Reason})
		} else {
			c.JSON(http.StatusInternalServerError, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    fmt.Sprintf("%s updated to %s", device.Name, device.Status),
		"device":     device.Name,
		"new_status": device.Status,
	})
}

type AssistantCommandRequest struct {
	Command string `json:"command"`
}

var assistantCommandRequestSchema = z.Struct(z.Shape{
	"Command": z.String().Min(1).Required(),
})

// AssistantCommand is the free-text entry path: interpret, resolve by name,
// then converge on the same action applier as the structured path.
func (rs *RestfulServer) AssistantCommand(c *gin.Context) {
	userID := currentUserID(c)

	var req AssistantCommandRequest
	if err := assistantCommandRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing command"})
		return
	}

	if !rs.CheckUserLimiter(userID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	parsed := rs.Home.Interpreter.ParseCommand(c.Request.Context(), req.Command)
	if parsed == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not understand command. Please try again."})
		return
	}

	device, err := rs.Home.Device.FindDeviceByName(userID, parsed.DeviceName)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      fmt.Sprintf("Device '%s' not found", parsed.DeviceName),
			"suggestion": "Please check device name or add it first",
		})
		return
	}

	if err := rs.Home.Action.ApplyAction(device, parsed.Action, parsed.Value); err != nil {
		var rejection *home.RejectionError
		if errors.As(err, &rejection) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   rejection.Reason,
				"command": req.Command,
				"device":  device.Name,
			})
		} else {
			c.JSON(http.StatusInternalServerError, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":            fmt.Sprintf("%s updated successfully", device.Name),
		"device":             device.Name,
		"action":             parsed.Action,
		"value":              parsed.Value,
		"new_status":         device.Status,
		"command_understood": req.Command,
	})
}

func (rs *RestfulServer) GetDeviceLogs(c *gin.Context) {
	deviceID, ok := deviceIDParam(c)
	if !ok {
		return
	}

	// ownership check before exposing history
	if _, err := rs.Home.Device.GetDevice(currentUserID(c), deviceID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Device not found"})
		return
	}

	logs, err := rs.Home.Audit.GetDeviceLogs(deviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (rs *RestfulServer) GetLogs(c *gin.Context) {
	logs, err := rs.Home.Audit.GetUserLogs(currentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
