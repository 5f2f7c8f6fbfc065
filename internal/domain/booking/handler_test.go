package booking

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"findmygym/internal/logging"
	"findmygym/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(db *gorm.DB) *gin.Engine {
	h := NewHandler(NewService(NewBookingRepository(db)), logging.Nop())
	r := gin.New()
	api := r.Group("/api")
	api.Use(testutil.HeaderAuth())
	h.RegisterRoutes(api)
	return r
}

func do(r *gin.Engine, method, path string, userID int64, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID > 0 {
		req.Header.Set("X-Test-User-ID", strconv.FormatInt(userID, 10))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type listEnvelope struct {
	Data struct {
		Bookings []View `json:"bookings"`
	} `json:"data"`
}

func TestHandler_CreateListUpdate(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, "Asha", "asha@example.com")
	other := testutil.CreateUser(t, db, "Ravi", "ravi@example.com")
	g := testutil.CreateGym(t, db, "alpha")
	r := setupRouter(db)

	w := do(r, http.MethodPost, "/api/bookings", u.ID, gin.H{"gymId": g.ID, "bookingType": "trial", "date": "2026-10-20", "timeSlot": "morning"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
	assert.Contains(t, w.Body.String(), `"slug":"alpha"`)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/bookings", u.ID, gin.H{"gymId": g.ID}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/bookings", u.ID, gin.H{"gymId": 999, "bookingType": "trial", "date": "2026-10-20"}).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/bookings", 0, nil).Code)

	w = do(r, http.MethodGet, "/api/bookings", u.ID, nil)
	var env listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Len(t, env.Data.Bookings, 1)
	b := env.Data.Bookings[0]
	assert.Equal(t, "alpha", b.Gym.Slug)

	path := "/api/bookings/" + strconv.FormatInt(b.ID, 10)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodPatch, path, other.ID, gin.H{"status": "cancelled"}).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPatch, path, u.ID, gin.H{"status": "lost"}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPatch, "/api/bookings/9999", u.ID, gin.H{"status": "cancelled"}).Code)

	w = do(r, http.MethodPatch, path, u.ID, gin.H{"status": "cancelled"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"cancelled"`)

	w = do(r, http.MethodPatch, path, u.ID, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_List_DegradesOnStoreFailure(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "bookings"`).WillReturnError(errors.New("connection refused"))
	r := setupRouter(db)

	w := do(r, http.MethodGet, "/api/bookings", 1, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"bookings":[]}}`, w.Body.String())
}

func TestHandler_Export(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, "Asha", "asha@example.com")
	g := testutil.CreateGym(t, db, "alpha")
	r := setupRouter(db)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/bookings", u.ID, gin.H{"gymId": g.ID, "bookingType": "trial", "date": "2026-10-20"}).Code)

	w := do(r, http.MethodGet, "/api/bookings/export", u.ID, nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, xlsxContentType, w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(exportSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "alpha", rows[1][1])
	assert.Equal(t, "2026-10-20", rows[1][4])
	assert.Equal(t, "pending", rows[1][6])
}
