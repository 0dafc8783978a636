package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// IdentityCookieName — HttpOnly-кука с подписанным идентификатором игрока.
// Это единственная "аутентификация" в клубе: непрозрачный идентификатор,
// никакого пароля.
const IdentityCookieName = "club_session"

const jwtClaimPlayerID = "player_id"

type contextKey string

const playerContextKey contextKey = "player"

type Identity struct {
	secret []byte
}

func NewIdentity(secret string) *Identity {
	return &Identity{secret: []byte(secret)}
}

// IssueCookie подписывает идентификатор игрока и упаковывает его в куку.
func (i *Identity) IssueCookie(playerID int) (*http.Cookie, error) {
	claims := jwt.MapClaims{
		jwtClaimPlayerID: playerID,
		"iat":            time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign identity token: %w", err)
	}

	return &http.Cookie{
		Name:     IdentityCookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// ClearCookie возвращает куку, стирающую идентичность (self-healing путь:
// дашборд сбрасывает её, если игрок за идентификатором исчез).
func (i *Identity) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     IdentityCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}

// Authenticate проверяет куку и кладёт claims в контекст запроса.
// Движки получают идентификатор игрока явным параметром от обработчиков,
// а не из глобального состояния.
func (i *Identity) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(IdentityCookieName)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return i.secret, nil
		})
		if err != nil || !token.Valid {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), playerContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetPlayerIDFromContext(ctx context.Context) (int, error) {
	claims, ok := ctx.Value(playerContextKey).(jwt.MapClaims)
	if !ok {
		return 0, errors.New("player claims not found in context or invalid type")
	}

	playerIDClaim, ok := claims[jwtClaimPlayerID]
	if !ok {
		return 0, fmt.Errorf("missing '%s' claim in token", jwtClaimPlayerID)
	}

	playerIDFloat, ok := playerIDClaim.(float64)
	if !ok {
		// После round-trip через JSON число приходит как float64, но при
		// прямой укладке claims в контекст это может быть int или строка.
		switch v := playerIDClaim.(type) {
		case int:
			if v <= 0 {
				return 0, fmt.Errorf("invalid player ID value in '%s' claim: %d", jwtClaimPlayerID, v)
			}
			return v, nil
		case string:
			playerID, err := strconv.Atoi(v)
			if err == nil && playerID > 0 {
				return playerID, nil
			}
		}
		return 0, fmt.Errorf("invalid type for '%s' claim: expected float64, int or string, got %T", jwtClaimPlayerID, playerIDClaim)
	}

	if playerIDFloat != float64(int(playerIDFloat)) {
		return 0, fmt.Errorf("'%s' claim is not an integer: %f", jwtClaimPlayerID, playerIDFloat)
	}

	playerID := int(playerIDFloat)
	if playerID <= 0 {
		return 0, fmt.Errorf("invalid player ID value in '%s' claim: %d", jwtClaimPlayerID, playerID)
	}

	return playerID, nil
}
