package handlers

import (
	"context"
	"net/http"

	"bookslist/internal/models"
	"bookslist/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseClaims   *service.Claims
	parseErr      error

	lastSignUpName     string
	lastSignUpPassword string
	lastGenName        string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, name, password string) (int, error) {
	m.lastSignUpName = name
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) GenerateToken(_ context.Context, name, password string) (string, error) {
	m.lastGenName = name
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}

func (m *mockAuth) ParseToken(token string) (*service.Claims, error) {
	m.lastParseToken = token
	return m.parseClaims, m.parseErr
}

type mockUsers struct {
	listResp  []models.User
	listErr   error
	getResp   *models.User
	getErr    error
	updResp   *models.User
	updErr    error
	deleteErr error

	lastGetID     int
	lastUpdID     int
	lastUpdName   string
	lastDeleteID  int
	deleteCalls   int
}

func (m *mockUsers) List(_ context.Context) ([]models.User, error) {
	return m.listResp, m.listErr
}

func (m *mockUsers) Get(_ context.Context, id int) (*models.User, error) {
	m.lastGetID = id
	return m.getResp, m.getErr
}

func (m *mockUsers) Update(_ context.Context, id int, name string) (*models.User, error) {
	m.lastUpdID = id
	m.lastUpdName = name
	return m.updResp, m.updErr
}

func (m *mockUsers) Delete(_ context.Context, id int) error {
	m.deleteCalls++
	m.lastDeleteID = id
	return m.deleteErr
}

type mockBooks struct {
	listResp      []models.Book
	listErr       error
	getResp       *models.Book
	getErr        error
	createResp    *models.Book
	createErr     error
	updResp       *models.Book
	updErr        error
	updStatusResp *models.Book
	updStatusErr  error
	deleteErr     error

	lastListUserID   int
	lastCreateUserID int
	lastCreateInput  service.BookInput
	lastUpdInput     service.BookInput
	lastStatus       models.ReadStatus
	deleteCalls      int
}

func (m *mockBooks) ListForUser(_ context.Context, userID int) ([]models.Book, error) {
	m.lastListUserID = userID
	return m.listResp, m.listErr
}

func (m *mockBooks) Get(_ context.Context, userID, bookID int) (*models.Book, error) {
	return m.getResp, m.getErr
}

func (m *mockBooks) Create(_ context.Context, userID int, in service.BookInput) (*models.Book, error) {
	m.lastCreateUserID = userID
	m.lastCreateInput = in
	return m.createResp, m.createErr
}

func (m *mockBooks) Update(_ context.Context, userID, bookID int, in service.BookInput) (*models.Book, error) {
	m.lastUpdInput = in
	return m.updResp, m.updErr
}

func (m *mockBooks) UpdateStatus(_ context.Context, userID, bookID int, status models.ReadStatus) (*models.Book, error) {
	m.lastStatus = status
	return m.updStatusResp, m.updStatusErr
}

func (m *mockBooks) Delete(_ context.Context, userID, bookID int) error {
	m.deleteCalls++
	return m.deleteErr
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	h := NewHandler(s, nil)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// claimsFor builds parsed token claims for an authenticated test caller.
func claimsFor(id int, name string) *service.Claims {
	return &service.Claims{UserID: id, Name: name}
}
