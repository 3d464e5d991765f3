package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hemolink-service/internal/app/models"
	"hemolink-service/internal/pkg/constvars"
	"hemolink-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateIdentityJWT signs the full identity claim set. Impersonation lives
// only in these claims, never in server-side session state.
func GenerateIdentityJWT(identity *models.Identity, secret string, expiryHours int) (string, time.Time, error) {
	expiresAt := time.Now().Add(time.Duration(expiryHours) * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":          identity.UserID,
		"role":             identity.RoleKey,
		"custom_role_id":   identity.CustomRoleID,
		"org_id":           identity.OrgID,
		"user_type":        identity.UserType,
		"is_impersonating": identity.IsImpersonating,
		"actual_user_type": identity.ActualUserType,
		"exp":              expiresAt.Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, exceptions.ErrTokenGenerate(err)
	}

	return tokenString, expiresAt, nil
}

func ParseIdentityJWT(tokenString, secret string) (*models.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, exceptions.ErrTokenInvalidOrExpired(err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}

	identity := &models.Identity{}
	identity.UserID, _ = claims["user_id"].(string)
	identity.RoleKey, _ = claims["role"].(string)
	identity.CustomRoleID, _ = claims["custom_role_id"].(string)
	identity.OrgID, _ = claims["org_id"].(string)
	identity.UserType, _ = claims["user_type"].(string)
	identity.IsImpersonating, _ = claims["is_impersonating"].(bool)
	identity.ActualUserType, _ = claims["actual_user_type"].(string)

	if identity.UserID == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(nil)
	}
	return identity, nil
}

// HashToken derives the session row key from the raw bearer token so the
// token itself is never stored.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
