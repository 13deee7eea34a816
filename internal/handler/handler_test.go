package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

// withShortcode добавляет в запрос параметр маршрута chi
func withShortcode(req *http.Request, code string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("shortcode", code)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func newRequest(t *testing.T, method, target, code string) *http.Request {
	t.Helper()
	return withShortcode(httptest.NewRequest(method, target, nil), code)
}
