package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	identityUC "github.com/studenthub/profile-api/internal/application/usecase/identity"
	"github.com/studenthub/profile-api/internal/domain/user"
	"github.com/studenthub/profile-api/pkg/apperror"
	"github.com/studenthub/profile-api/pkg/auth"
	"github.com/studenthub/profile-api/pkg/logger"
)

const GinContextKeySession = "sessionClaims"

// AuthMiddleware validates the identity-provider session token and stores
// its claims in the request context. Mutating actions fail closed before
// reaching any repository when the token is missing or invalid.
func AuthMiddleware(jwtSvc *auth.JWTService, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeySession, claims)
		c.Next()
	}
}

func GetSessionClaims(c *gin.Context) (*auth.SessionClaims, bool) {
	value, ok := c.Get(GinContextKeySession)
	if !ok {
		return nil, false
	}
	claims, ok := value.(*auth.SessionClaims)
	return claims, ok
}

// resolveCaller exchanges the session claims for the internal user record.
// On failure it attaches the error and reports false; the handler returns.
func resolveCaller(c *gin.Context, resolveUC *identityUC.ResolveUserUseCase) (*user.User, bool) {
	claims, ok := GetSessionClaims(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("no session in request context", nil))
		return nil, false
	}

	output, err := resolveUC.Execute(c.Request.Context(), identityUC.ResolveUserInput{
		Subject: claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
	})
	if err != nil {
		c.Error(err)
		return nil, false
	}
	return output.User, true
}

// ErrorMiddleware renders the last error a handler attached with c.Error.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log.Error("Request failed", err)

		if appErr, ok := err.(*apperror.AppError); ok {
			c.JSON(apperror.ToHTTPStatus(appErr), appErr.ToJSON())
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   apperror.ErrInternal.Error(),
			"message": "An internal server error occurred",
		})
	}
}
