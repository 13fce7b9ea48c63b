package routes

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"nguvan_backend/internals/testutil"
)

func TestHealth(t *testing.T) {
	db := testutil.DB(t)
	app, _ := testutil.App(t, testutil.Logger(t))
	BaseRoutes(app, db)

	var body struct {
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	assert.Equal(t, http.StatusOK, testutil.Do(t, app, http.MethodGet, "/health", "", nil, &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "connected", body.Database)

	sqlDB, _ := db.DB()
	_ = sqlDB.Close()
	assert.Equal(t, http.StatusServiceUnavailable, testutil.Do(t, app, http.MethodGet, "/health", "", nil, &body))
	assert.Equal(t, "down", body.Status)
}
