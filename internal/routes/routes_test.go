package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/restaurant-api/internal/audit"
	"github.com/BruksfildServices01/restaurant-api/internal/config"
	"github.com/BruksfildServices01/restaurant-api/internal/db/dbtest"
	"github.com/BruksfildServices01/restaurant-api/internal/logger"
	"github.com/BruksfildServices01/restaurant-api/internal/models"
	"github.com/BruksfildServices01/restaurant-api/internal/notify"
)

type sink struct {
	mu     sync.Mutex
	msgs   []notify.Message
	events []audit.Event
}

func (s *sink) Dispatch(msg notify.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
}

type auditSink struct{ *sink }

func (a auditSink) Dispatch(ev audit.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.events = append(a.events, ev)
}

type apiClient struct {
	t     *testing.T
	r     *gin.Engine
	db    *gorm.DB
	sink  *sink
	token string
}

func newAPI(t *testing.T) *apiClient {
	gin.SetMode(gin.TestMode)

	gdb := dbtest.New(t)
	s := &sink{}
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		AdminEmail:         "admin@example.com",
		Timezone:           "UTC",
		RateLimitPerMinute: 10000,
	}

	r := gin.New()
	RegisterRoutes(r, Deps{
		DB:       gdb,
		Config:   cfg,
		Log:      logger.Discard(),
		Notifier: s,
		Auditor:  auditSink{s},
	})

	return &apiClient{t: t, r: r, db: gdb, sink: s}
}

func (a *apiClient) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}

	w := httptest.NewRecorder()
	a.r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

type authResponse struct {
	User struct {
		ID   uint   `json:"id"`
		Role string `json:"role"`
	} `json:"user"`
	Token string `json:"token"`
}

type errorResponse struct {
	Code string `json:"error_code"`
}

func (a *apiClient) register(email string) authResponse {
	a.t.Helper()

	w := a.do(http.MethodPost, "/api/user/register", gin.H{
		"name": "Ana", "surname": "Lima", "email": email, "password": "secret123",
	})
	require.Equal(a.t, http.StatusCreated, w.Code, w.Body.String())
	return decode[authResponse](a.t, w)
}

func (a *apiClient) createTable(number, capacity int, location string) uint {
	a.t.Helper()

	w := a.do(http.MethodPost, "/api/tables", gin.H{
		"number": number, "capacity": capacity, "location": location,
	})
	require.Equal(a.t, http.StatusOK, w.Code, w.Body.String())
	return decode[struct {
		TableID uint `json:"tableId"`
	}](a.t, w).TableID
}

func TestHealth(t *testing.T) {
	api := newAPI(t)
	w := api.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReservationFlow(t *testing.T) {
	api := newAPI(t)

	admin := api.register("admin@example.com")
	require.Equal(t, "admin", admin.User.Role)
	api.token = admin.Token

	api.createTable(1, 2, "patio")
	api.createTable(2, 4, "patio")
	api.createTable(3, 4, "patio")

	guest := api.register("guest@example.com")
	assert.Equal(t, "user", guest.User.Role)

	booking := gin.H{
		"date": "2099-06-15", "time": "dinner", "guests": 5,
		"user_id": guest.User.ID, "location": "patio",
	}

	// --------------------------------------------------
	// criação
	// --------------------------------------------------
	api.token = guest.Token
	w := api.do(http.MethodPost, "/api/reservations", booking)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	created := decode[struct {
		Message       string `json:"message"`
		ReservationID uint   `json:"reservationId"`
	}](t, w)
	require.NotZero(t, created.ReservationID)
	assert.NotEmpty(t, created.Message)
	resPath := "/api/reservations/" + strconv.FormatUint(uint64(created.ReservationID), 10)

	w = api.do(http.MethodGet, resPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.Reservation](t, w)
	assert.Equal(t, "pending", got.Status)

	// mesas 1 e 2 ocupadas, sobra só a 3 (capacidade 4)
	w = api.do(http.MethodPost, "/api/reservations", booking)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "insufficient_capacity", decode[errorResponse](t, w).Code)

	// --------------------------------------------------
	// listagens
	// --------------------------------------------------
	w = api.do(http.MethodGet, "/api/reservations/customer?date=2099-06-15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	customer := decode[[]struct {
		Name   string `json:"name"`
		Tables []int  `json:"tables"`
	}](t, w)
	require.Len(t, customer, 1)
	assert.Equal(t, "Ana", customer[0].Name)
	assert.Equal(t, []int{1, 2}, customer[0].Tables)

	w = api.do(http.MethodGet, "/api/reservations?guests=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_filter", decode[errorResponse](t, w).Code)

	// --------------------------------------------------
	// estado
	// --------------------------------------------------
	w = api.do(http.MethodPut, resPath+"/status/completed", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = api.do(http.MethodPut, resPath+"/status/confirmed", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodPut, resPath+"/status/cancelled", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// cancelada libera as mesas
	w = api.do(http.MethodPost, "/api/reservations", booking)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// --------------------------------------------------
	// remoção
	// --------------------------------------------------
	w = api.do(http.MethodDelete, resPath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.ReservationID, decode[models.Reservation](t, w).ID)

	w = api.do(http.MethodGet, resPath, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "reservation_not_found", decode[errorResponse](t, w).Code)

	w = api.do(http.MethodDelete, resPath, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReservationErrors(t *testing.T) {
	api := newAPI(t)
	admin := api.register("admin@example.com")
	api.token = admin.Token
	api.createTable(1, 4, "hall")

	w := api.do(http.MethodPost, "/api/reservations", gin.H{"date": "2099-06-15"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_body", decode[errorResponse](t, w).Code)

	w = api.do(http.MethodPost, "/api/reservations", gin.H{
		"date": "2099-06-15", "time": "supper", "guests": 2, "user_id": admin.User.ID, "location": "hall",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_time", decode[errorResponse](t, w).Code)

	w = api.do(http.MethodPost, "/api/reservations", gin.H{
		"date": "2099-06-15", "time": "lunch", "guests": 2, "user_id": 999, "location": "hall",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "user_not_found", decode[errorResponse](t, w).Code)

	w = api.do(http.MethodGet, "/api/reservations/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodGet, "/api/reservations/12345", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAccessControl(t *testing.T) {
	api := newAPI(t)

	w := api.do(http.MethodGet, "/api/reservations", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	guest := api.register("guest@example.com")
	other := api.register("other@example.com")
	api.token = guest.Token

	w = api.do(http.MethodGet, "/api/tables", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodPost, "/api/reservations", gin.H{
		"date": "2099-06-15", "time": "lunch", "guests": 2, "user_id": other.User.ID, "location": "hall",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = api.do(http.MethodPost, "/api/user/register", gin.H{
		"name": "Ana", "surname": "Lima", "email": "guest@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "email_already_exists", decode[errorResponse](t, w).Code)

	w = api.do(http.MethodPost, "/api/user/login", gin.H{"email": "guest@example.com", "password": "wrong-pass"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = api.do(http.MethodPost, "/api/user/login", gin.H{"email": "guest@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[authResponse](t, w).Token)

	w = api.do(http.MethodGet, "/api/user/me", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestTableAdministration(t *testing.T) {
	api := newAPI(t)
	admin := api.register("admin@example.com")
	api.token = admin.Token

	id := api.createTable(5, 2, "terrace")
	path := "/api/tables/" + strconv.FormatUint(uint64(id), 10)

	w := api.do(http.MethodPost, "/api/tables", gin.H{"number": 5, "capacity": 4, "location": "hall"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "table_number_exists", decode[errorResponse](t, w).Code)

	w = api.do(http.MethodPut, path+"/capacity/6", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = api.do(http.MethodPut, path+"/capacity/0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(http.MethodPut, "/api/tables/999/capacity/4", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(http.MethodPost, "/api/reservations", gin.H{
		"date": "2099-06-15", "time": "lunch", "guests": 5, "user_id": admin.User.ID, "location": "terrace",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = api.do(http.MethodGet, "/api/tables/available/2099-06-15", nil)
	require.Equal(t, http.StatusOK, w.Code)
	grid := decode[[]struct {
		Number    int             `json:"number"`
		Capacity  int             `json:"capacity"`
		Available map[string]bool `json:"available"`
	}](t, w)
	require.Len(t, grid, 1)
	assert.Equal(t, 6, grid[0].Capacity)
	assert.False(t, grid[0].Available["lunch"])
	assert.True(t, grid[0].Available["dinner"])

	w = api.do(http.MethodGet, "/api/tables/future/2099-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.TableAssignment](t, w), 1)

	w = api.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "table_has_reservations", decode[errorResponse](t, w).Code)

	w = api.do(http.MethodGet, "/api/audit-logs?entity=table", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
