package favorite

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"findmygym/internal/domain"
	"findmygym/internal/domain/catalog"
	"findmygym/internal/logging"
	"findmygym/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gyms := catalog.NewService(catalog.NewGymRepository(db))
	h := NewHandler(NewService(NewFavoriteRepository(db), gyms), logging.Nop())
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
	Success bool         `json:"success"`
	Data    ListResponse `json:"data"`
}

func listFavorites(t *testing.T, r *gin.Engine, userID int64) []Item {
	t.Helper()
	w := do(r, http.MethodGet, "/api/favorites", userID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var env listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env.Data.Gyms
}

func TestFavorites_AddListRemove(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, "Asha", "asha@example.com")
	alpha := testutil.CreateGym(t, db, "alpha", testutil.WithAmenities("sauna"), testutil.WithMemberships(1500, 900))
	beta := testutil.CreateGym(t, db, "beta")
	testutil.CreateReview(t, db, alpha.ID, u.ID, 4)
	r := setupRouter(db)

	w := do(r, http.MethodPost, "/api/favorites", u.ID, gin.H{"gymId": alpha.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Pin creation times so ordering does not depend on clock resolution.
	require.NoError(t, db.Model(&domain.Favorite{}).Where("gym_id = ?", alpha.ID).
		Update("created_at", time.Now().Add(-time.Hour)).Error)
	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/favorites", u.ID, gin.H{"gymId": beta.ID}).Code)

	items := listFavorites(t, r, u.ID)
	require.Len(t, items, 2)
	assert.Equal(t, "beta", items[0].Slug)
	assert.Equal(t, "alpha", items[1].Slug)
	assert.NotZero(t, items[1].FavoriteID)
	assert.Equal(t, 4.0, items[1].Rating)
	assert.Equal(t, 1, items[1].ReviewCount)
	assert.Equal(t, []string{"sauna"}, items[1].Amenities)
	require.NotNil(t, items[1].LowestPrice)
	assert.Equal(t, 900.0, *items[1].LowestPrice)

	w = do(r, http.MethodDelete, "/api/favorites?gymId="+strconv.FormatInt(alpha.ID, 10), u.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	items = listFavorites(t, r, u.ID)
	require.Len(t, items, 1)
	assert.Equal(t, "beta", items[0].Slug)
}

func TestFavorites_Errors(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, "Asha", "asha@example.com")
	g := testutil.CreateGym(t, db, "alpha")
	r := setupRouter(db)

	require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/api/favorites", u.ID, gin.H{"gymId": g.ID}).Code)

	w := do(r, http.MethodPost, "/api/favorites", u.ID, gin.H{"gymId": g.ID})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Already favorited")

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/favorites", u.ID, gin.H{"gymId": 9999}).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/api/favorites", u.ID, gin.H{}).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodDelete, "/api/favorites", u.ID, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/api/favorites", 0, nil).Code)
}

func TestFavorites_EmptyListIsArray(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, "Asha", "asha@example.com")
	r := setupRouter(db)

	w := do(r, http.MethodGet, "/api/favorites", u.ID, nil)
	assert.JSONEq(t, `{"success":true,"data":{"gyms":[]}}`, w.Body.String())
}

func TestFavorites_DegradesOnStoreFailure(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "favorites"`).WillReturnError(errors.New("connection refused"))
	r := setupRouter(db)

	w := do(r, http.MethodGet, "/api/favorites", 1, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"gyms":[]}}`, w.Body.String())
}
