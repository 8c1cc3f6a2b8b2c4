package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"restaurant-pos-api/database"
	"restaurant-pos-api/events"
	"restaurant-pos-api/handlers"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// stubSender records outgoing mail instead of dialing SMTP
type stubSender struct {
	otps        map[string]string // recipient -> code
	receipts    int
	failOTP     bool
	failReceipt bool
}

func newStubSender() *stubSender {
	return &stubSender{otps: map[string]string{}}
}

func (s *stubSender) SendOTP(to, code string) error {
	if s.failOTP {
		return errors.New("smtp: auth failed")
	}
	s.otps[to] = code
	return nil
}

func (s *stubSender) SendReceipt(to string, amount float64, pdf []byte) error {
	if s.failReceipt {
		return errors.New("smtp: auth failed")
	}
	if len(pdf) == 0 {
		return errors.New("empty attachment")
	}
	s.receipts++
	return nil
}

type testEnv struct {
	t      *testing.T
	db     *gorm.DB
	router *gin.Engine
	auth   *middleware.Auth
	mail   *stubSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single connection keeps every query on the same in-memory DB
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))

	auth := middleware.NewAuth([]byte("test-secret"))
	mail := newStubSender()
	log := zap.NewNop()

	r := gin.New()
	routes.SetupRoutes(r, routes.Deps{
		Auth:       auth,
		AuthH:      handlers.NewAuthHandler(db, auth, mail, log),
		Orders:     handlers.NewOrderHandler(db, events.NoopPublisher{}, log),
		Tables:     handlers.NewTableHandler(db),
		Payments:   handlers.NewPaymentHandler(db, mail, log),
		Products:   handlers.NewProductHandler(db),
		Categories: handlers.NewCategoryHandler(db),
		Customers:  handlers.NewCustomerHandler(db),
		Dashboard:  handlers.NewDashboardHandler(db),
	})

	return &testEnv{t: t, db: db, router: r, auth: auth, mail: mail}
}

// createUser persists a verified user and returns it with a session token
func (e *testEnv) createUser(role models.Role, email string) (models.User, string) {
	e.t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(e.t, err)
	user := models.User{
		Name:         "Test " + string(role),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		IsVerified:   true,
		IsActive:     true,
	}
	require.NoError(e.t, e.db.Create(&user).Error)
	token, err := e.auth.GenerateToken(&user)
	require.NoError(e.t, err)
	return user, token
}

func (e *testEnv) cashierToken() string {
	_, token := e.createUser(models.RoleCashier, "cashier@pos.test")
	return token
}

func (e *testEnv) request(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	e.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(e.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
