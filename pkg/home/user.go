package home

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"liyu1981.xyz/smart-home-service/pkg/common"
	"liyu1981.xyz/smart-home-service/pkg/models"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

func (h *Home) registerUser(username string, password string) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameHomeCore,
		zap.String(common.LoggerFieldHomeCategory, common.LoggerCategoryHomeUser),
	)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := h.Db.Conn.Create(&user).Error; err != nil {
		return nil, err
	}

	logger.Info("Registered user", zap.String("username", username))
	return &user, nil
}

func (h *Home) authenticateUser(username string, password string) (*models.User, error) {
	var user models.User
	if err := h.Db.Conn.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func (h *Home) getUser(userID uint) (*models.User, error) {
	var user models.User
	if err := h.Db.Conn.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (h *Home) revokeToken(tokenID string, expiresAt int64) error {
	revoked := models.RevokedToken{
		TokenID:   tokenID,
		ExpiresAt: time.Unix(expiresAt, 0),
	}
	return h.Db.Conn.Create(&revoked).Error
}

func (h *Home) isTokenRevoked(tokenID string) bool {
	var count int64
	h.Db.Conn.Model(&models.RevokedToken{}).
		Where("token_id = ?", tokenID).
		Count(&count)
	return count > 0
}

type IUserImpl struct {
	home *Home
}

func (iu *IUserImpl) Register(username string, password string) (*models.User, error) {
	return iu.home.registerUser(username, password)
}

func (iu *IUserImpl) Authenticate(username string, password string) (*models.User, error) {
	return iu.home.authenticateUser(username, password)
}

func (iu *IUserImpl) GetUser(userID uint) (*models.User, error) {
	return iu.home.getUser(userID)
}

func (iu *IUserImpl) RevokeToken(tokenID string, expiresAt int64) error {
	return iu.home.revokeToken(tokenID, expiresAt)
}

func (iu *IUserImpl) IsTokenRevoked(tokenID string) bool {
	return iu.home.isTokenRevoked(tokenID)
}

func (h *Home) GetIUser() IUser {
	return &IUserImpl{home: h}
}
