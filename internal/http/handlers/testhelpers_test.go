package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/go-chi/chi/v5"

	"ecodeli-delivery/internal/auth"
)

type reqOpt func(*http.Request) *http.Request

func asCourier(id int64) reqOpt {
	return func(r *http.Request) *http.Request {
		return r.WithContext(auth.WithIdentity(r.Context(), auth.Identity{CourierID: id}))
	}
}

func withParam(key, value string) reqOpt {
	return func(r *http.Request) *http.Request {
		rc := chi.RouteContext(r.Context())
		if rc == nil {
			rc = chi.NewRouteContext()
			r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rc))
		}
		rc.URLParams.Add(key, value)
		return r
	}
}

func newRequest(method, target, body string, opts ...reqOpt) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	r := httptest.NewRequest(method, target, rd)
	r.Header.Set("Content-Type", "application/json")
	for _, o := range opts {
		r = o(r)
	}
	return r
}

func ptr[T any](v T) *T { return &v }
