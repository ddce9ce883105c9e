package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"liyu1981.xyz/smart-home-service/pkg/home/mocks"
	_ "liyu1981.xyz/smart-home-service/pkg/testing"

	"liyu1981.xyz/smart-home-service/pkg/common"
	"liyu1981.xyz/smart-home-service/pkg/db"
	"liyu1981.xyz/smart-home-service/pkg/home"
	"liyu1981.xyz/smart-home-service/pkg/models"
)

func setupTestServer() *RestfulServer {
	homeObj := home.Home{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	homeObj.WithServices(home.ServiceOpts{
		Device:      homeObj.GetIDevice(),
		Action:      homeObj.GetIAction(),
		Audit:       homeObj.GetIAudit(),
		User:        homeObj.GetIUser(),
		Interpreter: home.NewInterpreter(nil),
	})

	rs := &RestfulServer{
		Server: gin.Default(),
		Home:   &homeObj,
		// default we use no limiter, if need, later assign rs.RateLimiterStore = home.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

func doJSON(rs *RestfulServer, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a fresh user via the API and returns its tokens.
func registerAndLogin(t *testing.T, rs *RestfulServer) (access string, refresh string, username string) {
	t.Helper()

	username = uuid.NewString()
	creds := map[string]string{"username": username, "password": "hunter2"}

	w := doJSON(rs, "POST", "/auth/register", "", creds)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(rs, "POST", "/auth/login", "", creds)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	require.NotEmpty(t, pair.Access)
	require.NotEmpty(t, pair.Refresh)

	return pair.Access, pair.Refresh, username
}

func createDeviceViaAPI(t *testing.T, rs *RestfulServer, token, name, deviceType, status string) DeviceResponse {
	t.Helper()

	w := doJSON(rs, "POST", "/devices", token, map[string]string{
		"name":        name,
		"device_type": deviceType,
		"status":      status,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created DeviceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func deviceLogCount(t *testing.T, rs *RestfulServer, deviceID uint) int64 {
	t.Helper()
	var count int64
	require.NoError(t, rs.Home.Db.Conn.Model(&models.Log{}).Where("device_id = ?", deviceID).Count(&count).Error)
	return count
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAuthRequired(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := doJSON(rs, "GET", "/devices", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(rs, "GET", "/devices", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeviceCRUD(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, _, username := registerAndLogin(t, rs)

	created := createDeviceViaAPI(t, rs, token, "Kitchen Light", "light", "")
	assert.Equal(t, "Kitchen Light", created.Name)
	assert.Equal(t, "off", created.Status)
	assert.Equal(t, username, created.User)

	w := doJSON(rs, "GET", "/devices", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []DeviceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, created.ID, listed[0].ID)

	w = doJSON(rs, "PUT", fmt.Sprintf("/devices/%d", created.ID), token, map[string]string{
		"name":        "Hallway Light",
		"device_type": "light",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated DeviceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Hallway Light", updated.Name)
	assert.Equal(t, "off", updated.Status)

	w = doJSON(rs, "DELETE", fmt.Sprintf("/devices/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(rs, "GET", fmt.Sprintf("/devices/%d", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeviceCRUD_OwnerIsolation(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	ownerToken, _, _ := registerAndLogin(t, rs)
	strangerToken, _, _ := registerAndLogin(t, rs)

	created := createDeviceViaAPI(t, rs, ownerToken, "Bedroom AC", "ac", "24")

	w := doJSON(rs, "GET", fmt.Sprintf("/devices/%d", created.ID), strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(rs, "POST", fmt.Sprintf("/devices/%d/control", created.ID), strangerToken, map[string]any{
		"action": "turn_on",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestControlDevice(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, _, _ := registerAndLogin(t, rs)

	created := createDeviceViaAPI(t, rs, token, "Bedroom AC", "ac", "24")

	// out of range: rejected, status untouched, no log entry
	w := doJSON(rs, "POST", fmt.Sprintf("/devices/%d/control", created.ID), token, map[string]any{
		"action": "set_temperature",
		"value":  10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Bedroom AC °C must be between 16 and 30"}`, w.Body.String())

	var saved models.Device
	require.NoError(t, rs.Home.Db.Conn.First(&saved, created.ID).Error)
	assert.Equal(t, "24", saved.Status)
	assert.EqualValues(t, 0, deviceLogCount(t, rs, created.ID))

	// in range: applied, exactly one log entry
	w = doJSON(rs, "POST", fmt.Sprintf("/devices/%d/control", created.ID), token, map[string]any{
		"action": "set_temperature",
		"value":  20,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Bedroom AC updated to 20", resp["message"])
	assert.Equal(t, "Bedroom AC", resp["device"])
	assert.Equal(t, "20", resp["new_status"])

	require.NoError(t, rs.Home.Db.Conn.First(&saved, created.ID).Error)
	assert.Equal(t, "20", saved.Status)
	assert.EqualValues(t, 1, deviceLogCount(t, rs, created.ID))

	var entry models.Log
	require.NoError(t, rs.Home.Db.Conn.Where("device_id = ?", created.ID).First(&entry).Error)
	assert.Equal(t, "set_temperature", entry.Action)
	require.NotNil(t, entry.Value)
	assert.Equal(t, 20.0, *entry.Value)
}

func TestControlDevice_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, _, _ := registerAndLogin(t, rs)

	created := createDeviceViaAPI(t, rs, token, "Bedroom AC", "ac", "24")

	{
		// unknown action
		w := doJSON(rs, "POST", fmt.Sprintf("/devices/%d/control", created.ID), token, map[string]any{
			"action": "self_destruct",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid action or missing value"}`, w.Body.String())
	}

	{
		// value-bearing action without a value
		w := doJSON(rs, "POST", fmt.Sprintf("/devices/%d/control", created.ID), token, map[string]any{
			"action": "set_temperature",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Invalid action or missing value"}`, w.Body.String())
	}

	{
		// empty payload fails schema validation
		w := doJSON(rs, "POST", fmt.Sprintf("/devices/%d/control", created.ID), token, map[string]any{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	{
		// device id that does not exist
		w := doJSON(rs, "POST", "/devices/99999999/control", token, map[string]any{
			"action": "turn_on",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
	}

	// none of the rejected calls changed anything
	var saved models.Device
	require.NoError(t, rs.Home.Db.Conn.First(&saved, created.ID).Error)
	assert.Equal(t, "24", saved.Status)
	assert.EqualValues(t, 0, deviceLogCount(t, rs, created.ID))
}

func TestAssistantCommand(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, _, _ := registerAndLogin(t, rs)

	created := createDeviceViaAPI(t, rs, token, "Kitchen Light", "light", "off")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIInterpreter := mocks.NewMockIInterpreter(ctrl)
	rs.Home.Interpreter = mockIInterpreter

	mockIInterpreter.EXPECT().
		ParseCommand(gomock.Any(), gomock.Eq("turn on the kitchen light")).
		Return(&models.ParsedCommand{DeviceName: "kitchen light", Action: "turn_on"}).
		Times(1)

	w := doJSON(rs, "POST", "/assistant/command", token, map[string]string{
		"command": "turn on the kitchen light",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Kitchen Light updated successfully", resp["message"])
	assert.Equal(t, "Kitchen Light", resp["device"])
	assert.Equal(t, "turn_on", resp["action"])
	assert.Equal(t, "on", resp["new_status"])
	assert.Equal(t, "turn on the kitchen light", resp["command_understood"])

	var saved models.Device
	require.NoError(t, rs.Home.Db.Conn.First(&saved, created.ID).Error)
	assert.Equal(t, "on", saved.Status)
	assert.EqualValues(t, 1, deviceLogCount(t, rs, created.ID))
}

func TestAssistantCommand_CouldNotUnderstand(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, _, _ := registerAndLogin(t, rs)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIInterpreter := mocks.NewMockIInterpreter(ctrl)
	mockIDevice := mocks.NewMockIDevice(ctrl)
	rs.Home.Interpreter = mockIInterpreter
	rs.Home.Device = mockIDevice // no expectations: no lookup may happen

	mockIInterpreter.EXPECT().
		ParseCommand(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	w := doJSON(rs, "POST", "/assistant/command", token, map[string]string{
		"command": "do the thing with the stuff",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Could not understand command. Please try again."}`, w.Body.String())
}

func TestAssistantCommand_DeviceNotFound(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, _, _ := registerAndLogin(t, rs)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIInterpreter := mocks.NewMockIInterpreter(ctrl)
	rs.Home.Interpreter = mockIInterpreter

	mockIInterpreter.EXPECT().
		ParseCommand(gomock.Any(), gomock.Any()).
		Return(&models.ParsedCommand{DeviceName: "kitchen light", Action: "turn_on"}).
		Times(1)

	w := doJSON(rs, "POST", "/assistant/command", token, map[string]string{
		"command": "turn on the kitchen light",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{
		"error": "Device 'kitchen light' not found",
		"suggestion": "Please check device name or add it first"
	}`, w.Body.String())
}

func TestAssistantCommand_MissingCommand(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, _, _ := registerAndLogin(t, rs)

	for _, body := range []map[string]string{
		{},
		{"command": ""},
	} {
		w := doJSON(rs, "POST", "/assistant/command", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"error":"Missing command"}`, w.Body.String())
	}
}

func TestAssistantCommand_RejectedValue(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, _, _ := registerAndLogin(t, rs)

	created := createDeviceViaAPI(t, rs, token, "Bedroom AC", "ac", "24")

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockIInterpreter := mocks.NewMockIInterpreter(ctrl)
	rs.Home.Interpreter = mockIInterpreter

	mockIInterpreter.EXPECT().
		ParseCommand(gomock.Any(), gomock.Any()).
		Return(&models.ParsedCommand{DeviceName: "bedroom ac", Action: "set_temperature", Value: 10.0}).
		Times(1)

	w := doJSON(rs, "POST", "/assistant/command", token, map[string]string{
		"command": "set the bedroom ac to 10",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{
		"error": "Bedroom AC °C must be between 16 and 30",
		"command": "set the bedroom ac to 10",
		"device": "Bedroom AC"
	}`, w.Body.String())

	var saved models.Device
	require.NoError(t, rs.Home.Db.Conn.First(&saved, created.ID).Error)
	assert.Equal(t, "24", saved.Status)
	assert.EqualValues(t, 0, deviceLogCount(t, rs, created.ID))
}

func TestAssistantCommandWithLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	rs.RateLimiterStore = home.NewRateLimiterStore(0, 0) // nothing allowed
	token, _, _ := registerAndLogin(t, rs)

	w := doJSON(rs, "POST", "/assistant/command", token, map[string]string{
		"command": "turn on the kitchen light",
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestLogsEndpoints(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, _, _ := registerAndLogin(t, rs)
	strangerToken, _, _ := registerAndLogin(t, rs)

	created := createDeviceViaAPI(t, rs, token, "Bedroom AC", "ac", "24")

	for _, value := range []int{20, 22} {
		w := doJSON(rs, "POST", fmt.Sprintf("/devices/%d/control", created.ID), token, map[string]any{
			"action": "set_temperature",
			"value":  value,
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := doJSON(rs, "GET", fmt.Sprintf("/devices/%d/logs", created.ID), token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var logs []models.Log
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	assert.Len(t, logs, 2)

	w = doJSON(rs, "GET", "/logs", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	assert.Len(t, logs, 2)

	// a stranger sees neither the device logs nor any entries in the feed
	w = doJSON(rs, "GET", fmt.Sprintf("/devices/%d/logs", created.ID), strangerToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(rs, "GET", "/logs", strangerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logs))
	assert.Empty(t, logs)
}

func TestLogoutAndRefresh(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	token, refresh, _ := registerAndLogin(t, rs)

	// refresh works while the token is not revoked
	w := doJSON(rs, "POST", "/auth/refresh", "", map[string]string{"refresh": refresh})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(rs, "POST", "/auth/logout", token, map[string]string{"refresh": refresh})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// the blacklisted refresh token is no longer accepted
	w = doJSON(rs, "POST", "/auth/refresh", "", map[string]string{"refresh": refresh})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// logout without a refresh token is a client error
	w = doJSON(rs, "POST", "/auth/logout", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
