package auth_test

import (
	"net/http"
	"testing"

	"github.com/cimile-club/lineup-api/internal/auth"
	"github.com/cimile-club/lineup-api/internal/model"
	sharedError "github.com/cimile-club/lineup-api/internal/shared/error"
	"github.com/cimile-club/lineup-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupTestEnvironment creates all dependencies needed for auth handler tests
func setupTestEnvironment(t *testing.T) (*auth.AuthHandler, *gorm.DB) {
	t.Helper()

	// Setup test database
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
	})

	// Setup dependencies
	userRepo := auth.NewUserRepository()
	mockTokenManager := testutil.NewMockTokenManager()
	authService := auth.NewAuthService(db, userRepo, mockTokenManager)
	authHandler := auth.NewAuthHandler(authService)

	return authHandler, db
}

func TestRegister_Success(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/register", authHandler.Register)

	// Given: Valid register request
	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/register",
		Body: auth.RegisterRequest{
			Username: "manager1",
			Password: "password123",
			Role:     string(model.RoleManager),
		},
	}

	// When: Execute register request
	recorder := testutil.ExecuteRequest(t, router, request)

	// Then: Verify response
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response auth.UserResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.Equal(t, "manager1", response.Username)
	assert.Equal(t, model.RoleManager, response.Role)
	assert.True(t, response.IsActive)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/register", authHandler.Register)

	// Given: Create first user
	firstRequest := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/register",
		Body: auth.RegisterRequest{
			Username: "duplicate",
			Password: "password123",
			Role:     string(model.RoleManager),
		},
	}

	firstRecorder := testutil.ExecuteRequest(t, router, firstRequest)
	require.Equal(t, http.StatusCreated, firstRecorder.Code)

	// When: Try to create another user with same username
	duplicateRequest := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/register",
		Body: auth.RegisterRequest{
			Username: "duplicate",
			Password: "password456",
			Role:     string(model.RoleCoach),
		},
	}

	duplicateRecorder := testutil.ExecuteRequest(t, router, duplicateRequest)

	// Then: Verify error response
	assert.Equal(t, http.StatusBadRequest, duplicateRecorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, duplicateRecorder, &errorResponse)
	assert.Equal(t, "AUTH-004", errorResponse.Code)
	assert.NotEmpty(t, errorResponse.Message)
}

func TestRegister_InvalidRole(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/register", authHandler.Register)

	// When: Execute request with a role outside the enumeration
	request := testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/register",
		Body: auth.RegisterRequest{
			Username: "stranger",
			Password: "password123",
			Role:     "admin",
		},
	}

	recorder := testutil.ExecuteRequest(t, router, request)

	// Then: Verify error response
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-005", errorResponse.Code)
}

func TestRegister_ValidationError_MissingRequiredFields(t *testing.T) {
	// Given: Setup test environment
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/register", authHandler.Register)

	testCases := []struct {
		name        string
		requestBody map[string]string
		description string
	}{
		{
			name: "Missing username",
			requestBody: map[string]string{
				"password": "password123",
				"role":     string(model.RoleManager),
			},
			description: "Should fail when username is missing",
		},
		{
			name: "Missing password",
			requestBody: map[string]string{
				"username": "manager1",
				"role":     string(model.RoleManager),
			},
			description: "Should fail when password is missing",
		},
		{
			name: "Missing role",
			requestBody: map[string]string{
				"username": "manager1",
				"password": "password123",
			},
			description: "Should fail when role is missing",
		},
		{
			name: "Password too short",
			requestBody: map[string]string{
				"username": "manager1",
				"password": "short",
				"role":     string(model.RoleManager),
			},
			description: "Should fail when password is under 8 characters",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// When: Execute request with missing field
			request := testutil.TestRequest{
				Method: http.MethodPost,
				URL:    "/api/v1/auth/register",
				Body:   tc.requestBody,
			}

			recorder := testutil.ExecuteRequest(t, router, request)

			// Then: Verify validation error
			assert.Equal(t, http.StatusBadRequest, recorder.Code, tc.description)

			var errorResponse sharedError.ErrorResponse
			testutil.ParseResponse(t, recorder, &errorResponse)
			assert.NotEmpty(t, errorResponse.Message, tc.description)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	// Given: Setup test environment with a registered user
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/register", authHandler.Register)
	router.POST("/api/v1/auth/login", authHandler.Login)

	registerRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/register",
		Body: auth.RegisterRequest{
			Username: "coach1",
			Password: "password123",
			Role:     string(model.RoleCoach),
		},
	})
	require.Equal(t, http.StatusCreated, registerRecorder.Code)

	// When: Login with correct credentials
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "coach1",
			Password: "password123",
		},
	})

	// Then: Verify tokens and user payload
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response auth.LoginResponse
	testutil.ParseResponse(t, recorder, &response)
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
	assert.Equal(t, "coach1", response.User.Username)
	assert.Equal(t, model.RoleCoach, response.User.Role)
}

func TestLogin_IncorrectPassword(t *testing.T) {
	// Given: Setup test environment with a registered user
	authHandler, _ := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/register", authHandler.Register)
	router.POST("/api/v1/auth/login", authHandler.Login)

	registerRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/register",
		Body: auth.RegisterRequest{
			Username: "manager2",
			Password: "password123",
			Role:     string(model.RoleManager),
		},
	})
	require.Equal(t, http.StatusCreated, registerRecorder.Code)

	// When: Login with wrong password
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "manager2",
			Password: "wrong-password",
		},
	})

	// Then: Verify unauthorized response
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-003", errorResponse.Code)
}

func TestLogin_InactiveUser(t *testing.T) {
	// Given: Setup test environment with a deactivated user
	authHandler, db := setupTestEnvironment(t)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/auth/register", authHandler.Register)
	router.POST("/api/v1/auth/login", authHandler.Login)

	registerRecorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/register",
		Body: auth.RegisterRequest{
			Username: "retired",
			Password: "password123",
			Role:     string(model.RoleCoach),
		},
	})
	require.Equal(t, http.StatusCreated, registerRecorder.Code)

	err := db.Model(&model.User{}).
		Where("username = ?", "retired").
		Update("is_active", false).Error
	require.NoError(t, err)

	// When: Login with correct credentials
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/auth/login",
		Body: auth.LoginRequest{
			Username: "retired",
			Password: "password123",
		},
	})

	// Then: Verify rejection
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "AUTH-001", errorResponse.Code)
}
