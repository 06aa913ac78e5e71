package router_helper

import (
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/lintang-b-s/zonemap/pkg/metrics"

	"github.com/julienschmidt/httprouter"
)

// RouteGroup registers handlers on a shared httprouter under a common path prefix.
type RouteGroup struct {
	router *httprouter.Router
	prefix string
}

func NewRouteGroup(router *httprouter.Router, prefix string) *RouteGroup {
	return &RouteGroup{router: router, prefix: prefix}
}

func (g *RouteGroup) Group(prefix string) *RouteGroup {
	return &RouteGroup{router: g.router, prefix: g.path(prefix)}
}

func (g *RouteGroup) path(p string) string {
	if p == "" || p == "/" {
		return g.prefix
	}
	return path.Join(g.prefix, p)
}

// Handle registers handle and records request count and latency labelled by the route pattern.
func (g *RouteGroup) Handle(method, p string, handle httprouter.Handle) {
	route := g.path(p)
	g.router.Handle(method, route, func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		start := time.Now()
		rec := &codeRecorder{ResponseWriter: w, code: http.StatusOK}
		handle(rec, r, ps)
		metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(rec.code)).Inc()
		metrics.RequestDurationMs.WithLabelValues(method, route).Observe(float64(time.Since(start).Milliseconds()))
	})
}

type codeRecorder struct {
	http.ResponseWriter
	code int
}

func (rec *codeRecorder) WriteHeader(code int) {
	rec.code = code
	rec.ResponseWriter.WriteHeader(code)
}

func (g *RouteGroup) GET(p string, handle httprouter.Handle) {
	g.Handle(http.MethodGet, p, handle)
}

func (g *RouteGroup) POST(p string, handle httprouter.Handle) {
	g.Handle(http.MethodPost, p, handle)
}

func (g *RouteGroup) PUT(p string, handle httprouter.Handle) {
	g.Handle(http.MethodPut, p, handle)
}

func (g *RouteGroup) DELETE(p string, handle httprouter.Handle) {
	g.Handle(http.MethodDelete, p, handle)
}
