package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/citifix/citifix-backend/internal/handler"
	"github.com/citifix/citifix-backend/internal/models"
	"github.com/citifix/citifix-backend/internal/repository"
	"github.com/citifix/citifix-backend/internal/service"
	"github.com/citifix/citifix-backend/internal/testutil"
	"github.com/citifix/citifix-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerIntegrationTestSuite struct {
	suite.Suite
	testDB      *testutil.TestDatabase
	authHandler *handler.AuthHandler
	router      *gin.Engine
}

func (s *AuthHandlerIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)

	// Initialize logger (required for handlers)
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())

	userRepo := repository.NewUserRepository(s.testDB.DB)
	authService := service.NewAuthService(userRepo, "test-secret-key", 1*time.Hour)

	s.authHandler = handler.NewAuthHandler(authService)

	s.router = gin.New()
	s.router.POST("/api/auth/register", s.authHandler.Register)
	s.router.POST("/api/auth/login", s.authHandler.Login)
}

func (s *AuthHandlerIntegrationTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *AuthHandlerIntegrationTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)
}

func (s *AuthHandlerIntegrationTestSuite) postJSON(path string, body interface{}) *httptest.ResponseRecorder {
	bodyBytes, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *AuthHandlerIntegrationTestSuite) TestRegisterSuccess() {
	w := s.postJSON("/api/auth/register", map[string]string{
		"name":     "New User",
		"email":    "newuser@example.com",
		"password": "SecurePass123",
	})

	assert.Equal(s.T(), http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "User registered successfully", response["message"])
	assert.NotEmpty(s.T(), response["token"], "Token should be returned in the body")

	user := response["user"].(map[string]interface{})
	assert.Equal(s.T(), "New User", user["name"])
	assert.Equal(s.T(), "newuser@example.com", user["email"])
	assert.Equal(s.T(), "CITIZEN", user["role"], "New registrations are always citizens")
	assert.Nil(s.T(), user["password"], "Password must never be serialized")
}

func (s *AuthHandlerIntegrationTestSuite) TestRegisterDuplicateEmail() {
	existingUser, _ := testutil.CreateTestUser("Existing", "test@example.com", "Pass1234", models.RoleCitizen)
	s.testDB.DB.Create(existingUser)

	w := s.postJSON("/api/auth/register", map[string]string{
		"name":     "Different",
		"email":    "test@example.com", // Same email
		"password": "SecurePass123",
	})

	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(s.T(), response["error"], "email already exists")
}

func (s *AuthHandlerIntegrationTestSuite) TestRegisterInvalidInput() {
	testCases := []struct {
		name     string
		reqBody  map[string]string
		expected string
	}{
		{
			name: "Short name",
			reqBody: map[string]string{
				"name":     "a",
				"email":    "test@example.com",
				"password": "Pass123456",
			},
			expected: "name must be at least 2 characters",
		},
		{
			name: "Invalid email",
			reqBody: map[string]string{
				"name":     "Test User",
				"email":    "invalid-email",
				"password": "Pass123456",
			},
			expected: "invalid email format",
		},
		{
			name: "Short password",
			reqBody: map[string]string{
				"name":     "Test User",
				"email":    "test@example.com",
				"password": "short",
			},
			expected: "password must be at least 8 characters",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			w := s.postJSON("/api/auth/register", tc.reqBody)

			assert.Equal(s.T(), http.StatusBadRequest, w.Code)

			var response map[string]interface{}
			json.Unmarshal(w.Body.Bytes(), &response)
			assert.Contains(s.T(), response["error"], tc.expected)
		})
	}
}

func (s *AuthHandlerIntegrationTestSuite) TestLoginSuccess() {
	testUser, _ := testutil.CreateTestUser("Login User", "login@example.com", "LoginPass123", models.RoleCitizen)
	s.testDB.DB.Create(testUser)

	w := s.postJSON("/api/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "LoginPass123",
	})

	assert.Equal(s.T(), http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Login successful", response["message"])
	assert.NotEmpty(s.T(), response["token"])

	user := response["user"].(map[string]interface{})
	assert.Equal(s.T(), "Login User", user["name"])
	assert.Equal(s.T(), "login@example.com", user["email"])
}

func (s *AuthHandlerIntegrationTestSuite) TestLoginInvalidCredentials() {
	testUser, _ := testutil.CreateTestUser("Login User", "login@example.com", "CorrectPass123", models.RoleCitizen)
	s.testDB.DB.Create(testUser)

	w := s.postJSON("/api/auth/login", map[string]string{
		"email":    "login@example.com",
		"password": "WrongPass123",
	})

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(s.T(), response["error"], "invalid credentials")
}

func (s *AuthHandlerIntegrationTestSuite) TestLoginNonExistentUser() {
	w := s.postJSON("/api/auth/login", map[string]string{
		"email":    "nonexistent@example.com",
		"password": "SomePass123",
	})

	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Contains(s.T(), response["error"], "invalid credentials")
}

func TestAuthHandlerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerIntegrationTestSuite))
}
