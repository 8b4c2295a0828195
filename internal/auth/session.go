package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/fguardian/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultSessionTTL is the lifetime of a session.
const DefaultSessionTTL = 7 * 24 * time.Hour

// Callback completes a login. It asks the provider for the identity behind
// sessionID, creates the user with the default categories on first login
// and stores a new session for the token the provider issued.
func Callback(ctx context.Context, db *gorm.DB, provider Provider, sessionID string, ttl time.Duration) (models.User, models.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return models.User{}, models.Session{}, ErrSessionIDMissing
	}

	identity, err := provider.SessionData(ctx, sessionID)
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	var user models.User
	var session models.Session

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(identity.Email))).Error
		if errors.Is(err, models.ErrResourceNotFound) {
			user = models.User{
				Email:   identity.Email,
				Name:    identity.Name,
				Picture: identity.Picture,
			}

			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			categories := models.DefaultCategories(user.ID)
			if err := tx.Create(&categories).Error; err != nil {
				return err
			}

			log.Info().Str("user", user.ID.String()).Msg("created user with default categories")
		} else if err != nil {
			return err
		}

		// Providers may hand out the same token again for a new login
		err = tx.Unscoped().Where("token = ?", identity.SessionToken).Delete(&models.Session{}).Error
		if err != nil {
			return err
		}

		session = models.Session{
			UserID:    user.ID,
			Token:     identity.SessionToken,
			ExpiresAt: time.Now().Add(ttl).In(time.UTC),
		}

		return tx.Create(&session).Error
	})
	if err != nil {
		return models.User{}, models.Session{}, err
	}

	return user, session, nil
}

// Authenticate returns the user owning the session with the given token.
func Authenticate(db *gorm.DB, token string, now time.Time) (models.User, error) {
	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	var session models.Session
	err := db.Preload("User").First(&session, "token = ?", token).Error
	if errors.Is(err, models.ErrResourceNotFound) {
		return models.User{}, ErrUnauthorized
	} else if err != nil {
		return models.User{}, err
	}

	if session.Expired(now) {
		return models.User{}, ErrUnauthorized
	}

	// Users are never deleted, but a session must not outlive its user
	if session.User.ID != session.UserID {
		return models.User{}, ErrUnauthorized
	}

	return session.User, nil
}

// Logout removes the session with the given token.
func Logout(db *gorm.DB, token string) error {
	return db.Unscoped().Where("token = ?", token).Delete(&models.Session{}).Error
}

// DeleteExpired removes all sessions that expired before now.
func DeleteExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Unscoped().Where("datetime(expires_at) < datetime(?)", now.In(time.UTC)).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}
