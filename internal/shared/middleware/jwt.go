package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cimile-club/lineup-api/internal/model"
	sharedContext "github.com/cimile-club/lineup-api/internal/shared/context"
	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
	"github.com/cimile-club/lineup-api/internal/shared/token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
	inactiveUser  = "INACTIVE_USER"
)

// Domain errors
var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
	ErrInactiveUser  = sharedError.NewDomainError(inactiveUser)
)

// Register JWT error responses
func init() {
	loginRequired := sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-000",
		Message: "로그인을 해주세요.",
	}

	sharedError.RegisterDomainErrorResponse(missingToken, loginRequired)
	sharedError.RegisterDomainErrorResponse(invalidToken, loginRequired)
	sharedError.RegisterDomainErrorResponse(expiredToken, loginRequired)
	sharedError.RegisterDomainErrorResponse(invalidClaims, loginRequired)

	sharedError.RegisterDomainErrorResponse(inactiveUser, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "비활성화된 계정입니다.",
	})
}

// JWT authenticates the request. The token carries only the username; the user
// row is resolved on every request so deactivated accounts are rejected
// immediately, not at token expiry.
func JWT(tokenManager token.Manager, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 요청 정보 (로깅용)
		clientIP := c.ClientIP()
		method := c.Request.Method
		path := c.Request.URL.Path

		// Step 1: 토큰 추출
		raw, err := extractToken(c)
		if err != nil {
			slog.Warn("JWT 토큰 추출 실패",
				"step", "extract_token",
				"error", err.Error(),
				"client_ip", clientIP,
				"method", method,
				"path", path,
			)
			handleJWTError(c, err)
			return
		}

		// Step 2: 토큰 검증
		claims, err := tokenManager.ValidateToken(raw)
		if err != nil {
			slog.Warn("JWT 토큰 검증 실패",
				"step", "validate_token",
				"error", err.Error(),
				"client_ip", clientIP,
				"method", method,
				"path", path,
			)
			handleJWTError(c, mapTokenError(err))
			return
		}

		// Step 3: 사용자 조회
		var user model.User
		err = db.WithContext(c.Request.Context()).
			Where("username = ?", claims.Username).
			First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				slog.Warn("JWT 사용자 조회 실패 - 존재하지 않는 사용자",
					"step", "resolve_user",
					"client_ip", clientIP,
					"path", path,
				)
				handleJWTError(c, ErrInvalidToken)
				return
			}
			c.Error(err)
			c.AbortWithStatusJSON(sharedError.InternalServerError.Status, sharedError.InternalServerError)
			return
		}

		if !user.IsActive {
			slog.Warn("JWT 인증 실패 - 비활성화된 계정",
				"step", "resolve_user",
				"username", claims.Username,
				"client_ip", clientIP,
				"path", path,
			)
			handleJWTError(c, ErrInactiveUser)
			return
		}

		// 인증 성공 - Context에 사용자 정보 저장
		c.Set(sharedContext.UserIDKey, user.ID)
		c.Set(sharedContext.UsernameKey, user.Username)
		c.Set(sharedContext.UserRoleKey, user.Role)
		c.Next()
	}
}

// handleJWTError handles JWT errors using the standardized error response format
// Note: Logging is done at the point of error detection in JWT() function
func handleJWTError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		c.JSON(resp.Status, resp)
	} else {
		// 예상치 못한 에러 → Fallback 응답
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-999",
			Message: "인증에 실패했습니다.",
		})
	}
	c.Abort()
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
