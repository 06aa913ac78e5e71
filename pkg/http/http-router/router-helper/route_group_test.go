package router_helper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouteGroupPrefix(t *testing.T) {
	router := httprouter.New()
	api := NewRouteGroup(router, "/api")
	zones := api.Group("/zones")

	var got string
	zones.GET("/:id", func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		got = ps.ByName("id")
	})
	zones.DELETE("/", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/zones/z1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "z1", got)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/zones", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
