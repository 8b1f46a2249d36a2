package auth

import (
	"net/http"

	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
)

const (
	incorrectCredentials = "INCORRECT_CREDENTIALS" // errInfo
	inactiveUser         = "INACTIVE_AUTH_USER"    // errInfo
	usernameTaken        = "USERNAME_TAKEN"        // errInfo
	invalidRole          = "INVALID_ROLE"          // errInfo
	userNotFound         = "AUTH_USER_NOT_FOUND"   // errInfo
)

var (
	ErrIncorrectCredentials = sharedError.NewDomainError(incorrectCredentials)
	ErrInactiveUser         = sharedError.NewDomainError(inactiveUser)
	ErrUsernameTaken        = sharedError.NewDomainError(usernameTaken)
	ErrInvalidRole          = sharedError.NewDomainError(invalidRole)
	ErrUserNotFound         = sharedError.NewDomainError(userNotFound)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectCredentials, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-003",
		Message: "아이디 또는 비밀번호가 일치하지 않습니다.",
	})

	sharedError.RegisterDomainErrorResponse(inactiveUser, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-001",
		Message: "비활성화된 계정입니다.",
	})

	sharedError.RegisterDomainErrorResponse(usernameTaken, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-004",
		Message: "이미 사용 중인 아이디입니다.",
	})

	sharedError.RegisterDomainErrorResponse(invalidRole, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-005",
		Message: "알 수 없는 역할입니다. (총무/감독)",
	})

	sharedError.RegisterDomainErrorResponse(userNotFound, sharedError.ErrorResponse{
		Status:  http.StatusNotFound,
		Code:    "AUTH-006",
		Message: "사용자를 찾을 수 없습니다.",
	})
}
