package review

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"findmygym/internal/domain"
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
	h := NewHandler(NewService(NewReviewRepository(db)), logging.Nop())
	r := gin.New()
	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(testutil.HeaderAuth())
	h.RegisterRoutes(api, protected)
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

func TestHandler_CreateAndList(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, "Asha", "asha@example.com")
	g := testutil.CreateGym(t, db, "alpha")
	r := setupRouter(db)

	w := do(r, http.MethodPost, "/api/reviews", u.ID, gin.H{"gymId": g.ID, "rating": 4, "text": "Good vibes"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"name":"Asha"`)
	assert.Contains(t, w.Body.String(), `"isVerified":false`)

	w = do(r, http.MethodPost, "/api/reviews", u.ID, gin.H{"gymId": g.ID, "rating": 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")

	w = do(r, http.MethodPost, "/api/reviews", u.ID, gin.H{"gymId": 999, "rating": 4, "text": "x"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/api/reviews", 0, gin.H{"gymId": g.ID, "rating": 4, "text": "x"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	testutil.CreateReview(t, db, g.ID, u.ID, 2.5)
	w = do(r, http.MethodGet, "/api/reviews?gymId="+strconv.FormatInt(g.ID, 10)+"&sort=lowest", 0, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data ListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, int64(2), env.Data.Total)
	assert.Equal(t, 2.5, env.Data.Reviews[0].Rating)

	w = do(r, http.MethodGet, "/api/reviews?rating=4", 0, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, int64(1), env.Data.Total)
}

func TestHandler_Delete(t *testing.T) {
	db := testutil.NewDB(t)
	owner := testutil.CreateUser(t, db, "Asha", "asha@example.com")
	other := testutil.CreateUser(t, db, "Ravi", "ravi@example.com")
	g := testutil.CreateGym(t, db, "alpha")
	rv := testutil.CreateReview(t, db, g.ID, owner.ID, 5)
	r := setupRouter(db)
	path := "/api/reviews/" + strconv.FormatInt(rv.ID, 10)

	assert.Equal(t, http.StatusForbidden, do(r, http.MethodDelete, path, other.ID, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/api/reviews/9999", owner.ID, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodDelete, "/api/reviews/abc", owner.ID, nil).Code)

	w := do(r, http.MethodDelete, path, owner.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, db.Model(&domain.Review{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestHandler_ToggleHelpful(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, "Asha", "asha@example.com")
	g := testutil.CreateGym(t, db, "alpha")
	rv := testutil.CreateReview(t, db, g.ID, u.ID, 5)
	r := setupRouter(db)
	path := "/api/reviews/" + strconv.FormatInt(rv.ID, 10) + "/helpful"

	w := do(r, http.MethodPost, path, u.ID, nil)
	assert.Contains(t, w.Body.String(), `"action":"added"`)
	var got domain.Review
	require.NoError(t, db.First(&got, rv.ID).Error)
	assert.Equal(t, 1, got.HelpfulCount)

	w = do(r, http.MethodPost, path, u.ID, nil)
	assert.Contains(t, w.Body.String(), `"action":"removed"`)
	require.NoError(t, db.First(&got, rv.ID).Error)
	assert.Equal(t, 0, got.HelpfulCount)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/reviews/9999/helpful", u.ID, nil).Code)
}

func TestHandler_Report(t *testing.T) {
	db := testutil.NewDB(t)
	u := testutil.CreateUser(t, db, "Asha", "asha@example.com")
	g := testutil.CreateGym(t, db, "alpha")
	rv := testutil.CreateReview(t, db, g.ID, u.ID, 1)
	r := setupRouter(db)
	path := "/api/reviews/" + strconv.FormatInt(rv.ID, 10) + "/report"

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, path, u.ID, gin.H{}).Code)
	assert.Equal(t, http.StatusCreated, do(r, http.MethodPost, path, u.ID, gin.H{"reason": "spam"}).Code)

	w := do(r, http.MethodPost, path, u.ID, gin.H{"reason": "spam again"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Already reported")

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/api/reviews/9999/report", u.ID, gin.H{"reason": "spam"}).Code)
}
