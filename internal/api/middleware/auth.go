package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"bopLand/internal/api"
	"bopLand/internal/auth"
)

const (
	UserIDKey    string = "user_id"
	UserEmailKey string = "user_email"
)

// AuthMiddleware проверяет Bearer токен, если заголовок Authorization передан,
// и кладёт id и email пользователя в контекст gin.
// Запрос без заголовка проходит дальше: доступ решает RequireUser.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		scheme, token, found := strings.Cut(authHeader, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			abortUnauthorized(c, "invalid authorization format")
			return
		}

		identity, err := tokens.Parse(token)
		if err != nil {
			log.Warn().
				Err(err).
				Str("request_id", RequestID(c)).
				Str("layer", "middleware").
				Msg("rejected access token")
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		c.Set(UserIDKey, identity.UserID)
		c.Set(UserEmailKey, identity.Email)

		c.Next()
	}
}

// RequireUser пропускает только запросы с валидным токеном
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			abortUnauthorized(c, "access token required")
			return
		}
		c.Next()
	}
}

// UserID возвращает id аутентифицированного пользователя
func UserID(c *gin.Context) (int64, bool) {
	value, ok := c.Get(UserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

func abortUnauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{
		Error: api.Error{
			Code:    api.ErrCodeUnauthorized,
			Message: message,
		},
	})
}
