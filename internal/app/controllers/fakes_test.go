package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/hagwon-app/hagwon/internal/app/models"
	"github.com/hagwon-app/hagwon/internal/app/models/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// performJSON issues a request with an optional JSON body against the router.
func performJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a response body into a generic map for assertions.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// fakeRegistrationService returns canned values per method.
type fakeRegistrationService struct {
	registerAcademyFn func(req *dto.RegisterAcademyRequest) (*models.Academy, error)
	registerUserFn    func(req *dto.RegisterUserRequest) (*dto.RegistrationResponse, error)
	decideFn          func(req *dto.DecideRegistrationRequest) (*models.Registration, error)
	pendingUsersFn    func(academyID string, role models.Role) ([]*models.PendingRegistrant, error)
	pendingAcadsFn    func() ([]*models.Academy, error)
}

func (f *fakeRegistrationService) RegisterAcademy(_ context.Context, req *dto.RegisterAcademyRequest) (*models.Academy, error) {
	return f.registerAcademyFn(req)
}

func (f *fakeRegistrationService) RegisterUser(_ context.Context, req *dto.RegisterUserRequest) (*dto.RegistrationResponse, error) {
	return f.registerUserFn(req)
}

func (f *fakeRegistrationService) DecideRegistration(_ context.Context, req *dto.DecideRegistrationRequest) (*models.Registration, error) {
	return f.decideFn(req)
}

func (f *fakeRegistrationService) ListPendingUsers(_ context.Context, academyID string, role models.Role) ([]*models.PendingRegistrant, error) {
	return f.pendingUsersFn(academyID, role)
}

func (f *fakeRegistrationService) ListPendingAcademies(_ context.Context) ([]*models.Academy, error) {
	return f.pendingAcadsFn()
}

// fakeStudentService returns canned values per method.
type fakeStudentService struct {
	removeFn   func(userID string) error
	listFn     func(academyID string) ([]*models.User, error)
	lecturesFn func(userID string) ([]*models.Lecture, error)
}

func (f *fakeStudentService) RemoveStudent(_ context.Context, userID string) error {
	return f.removeFn(userID)
}

func (f *fakeStudentService) ListStudents(_ context.Context, academyID string) ([]*models.User, error) {
	return f.listFn(academyID)
}

func (f *fakeStudentService) GetStudentLectures(_ context.Context, userID string) ([]*models.Lecture, error) {
	return f.lecturesFn(userID)
}

// fakeAuthService returns canned values per method.
type fakeAuthService struct {
	signUpFn  func(req *dto.SignUpRequest) (*models.User, error)
	loginFn   func(req *dto.LoginRequest) (*dto.TokenResponse, error)
	refreshFn func(token string) (*dto.TokenResponse, error)
	logoutFn  func(token string) error
	checkIDFn func(userID string) (bool, error)
}

func (f *fakeAuthService) SignUp(_ context.Context, req *dto.SignUpRequest) (*models.User, error) {
	return f.signUpFn(req)
}

func (f *fakeAuthService) Login(_ context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	return f.loginFn(req)
}

func (f *fakeAuthService) RefreshToken(_ context.Context, token string) (*dto.TokenResponse, error) {
	return f.refreshFn(token)
}

func (f *fakeAuthService) Logout(_ context.Context, token string) error {
	return f.logoutFn(token)
}

func (f *fakeAuthService) CheckIDAvailable(_ context.Context, userID string) (bool, error) {
	return f.checkIDFn(userID)
}
