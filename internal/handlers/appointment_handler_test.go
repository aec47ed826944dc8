package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/calensys/appointment-api/internal/db"
	"github.com/calensys/appointment-api/internal/routes"
	"github.com/calensys/appointment-api/internal/validators"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	validators.Register()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	r := gin.New()
	routes.RegisterRoutes(r, db)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBookingFlow(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/appointments/add-slot", gin.H{
		"date": "2024-04-01", "time": "10:00", "capacity": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/appointments/book", gin.H{
		"date": "2024-04-01", "time": "10:00", "slots": 1,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var booked struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &booked))
	require.NotEmpty(t, booked.ID)

	// Capacity exhausted.
	w = doJSON(t, r, http.MethodPost, "/api/appointments/book", gin.H{
		"date": "2024-04-01", "time": "10:00", "slots": 1,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no_available_slots")

	w = doJSON(t, r, http.MethodDelete, "/api/appointments/cancel/"+booked.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Appointment has been successfully canceled")

	w = doJSON(t, r, http.MethodGet, "/api/appointments/available-slots?date=2024-04-01", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var slots []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &slots))
	assert.Len(t, slots, 1)
}

func TestBook_BindingRejectsBadInput(t *testing.T) {
	r := setupRouter(t)

	tests := []struct {
		name string
		body gin.H
	}{
		{name: "slots above max", body: gin.H{"date": "2024-04-01", "time": "10:00", "slots": 9}},
		{name: "bad date format", body: gin.H{"date": "04/01/2024", "time": "10:00", "slots": 1}},
		{name: "bad time format", body: gin.H{"date": "2024-04-01", "time": "10am", "slots": 1}},
		{name: "missing time", body: gin.H{"date": "2024-04-01", "slots": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/appointments/book", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Contains(t, w.Body.String(), "invalid_request")
		})
	}
}

func TestAvailableSlots_RequiresDate(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/appointments/available-slots", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_date")
}

func TestCancel_UnknownIDIsNotFound(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodDelete, "/api/appointments/cancel/c56a4180-65aa-42ec-a945-5fd21dec0538", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Appointment not found")
}

func TestDayOffEndpoints(t *testing.T) {
	r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/appointments/days-off", gin.H{
		"date": "2024-12-25", "reason": "Christmas Day",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/appointments/days-off", gin.H{
		"date": "2024-12-25",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "day_off_exists")

	w = doJSON(t, r, http.MethodGet, "/api/appointments/days-off", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)

	w = doJSON(t, r, http.MethodGet, "/api/appointments/available-slots?date=2024-12-25", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Christmas Day")
}
