package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecodeli-delivery/internal/auth"
	"ecodeli-delivery/internal/domain"
	"ecodeli-delivery/internal/http/handlers"
	"ecodeli-delivery/internal/http/middleware/ratelimit"
	"ecodeli-delivery/internal/http/router"
	"ecodeli-delivery/internal/logx"
	"ecodeli-delivery/internal/service/courier"
	"ecodeli-delivery/internal/service/delivery"
	"ecodeli-delivery/internal/service/transfer"
	"ecodeli-delivery/internal/testutil/memstore"
)

const secret = "router-secret"

type env struct {
	store   *memstore.Store
	handler http.Handler
}

func newEnv(t *testing.T, limiter ratelimit.Limiter) env {
	t.Helper()

	store := memstore.New()
	log := logx.Nop()
	transfers := transfer.NewService(store, nil, nil, nil, nil, nil, transfer.Config{}, log)
	deliveries := delivery.NewDeliveryService(store, transfers, nil, 0, log)
	couriers := courier.NewService(store.Couriers(), 0)

	h := router.New(
		log,
		handlers.New(log),
		handlers.NewPackageHandler(log, handlers.NewDeliveryUsecase(deliveries), handlers.NewTransferUsecase(transfers)),
		handlers.NewCourierHandler(log, handlers.NewCourierUsecase(couriers)),
		auth.NewVerifier(secret, ""),
		ratelimit.New(log, nil, limiter),
	)
	return env{store: store, handler: h}
}

func token(t *testing.T, courierID int64) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		CourierID: courierID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func (e env) do(t *testing.T, method, path, body string, courierID int64) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	if courierID > 0 {
		req.Header.Set("Authorization", "Bearer "+token(t, courierID))
	}
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)
	return rr
}

func TestRouter_OpsEndpointsArePublic(t *testing.T) {
	t.Parallel()

	e := newEnv(t, nil)

	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/ping", "", 0).Code)
	assert.Equal(t, http.StatusNoContent, e.do(t, http.MethodHead, "/healthcheck", "", 0).Code)

	metrics := e.do(t, http.MethodGet, "/metrics", "", 0)
	assert.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "http_requests_total")

	assert.Equal(t, http.StatusNotFound, e.do(t, http.MethodGet, "/nope", "", 0).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, e.do(t, http.MethodDelete, "/ping", "", 0).Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	t.Parallel()

	e := newEnv(t, nil)
	for _, path := range []string{"/packages/mydeliveries", "/packages/pending-transfers", "/couriers", "/transfer-history/progress/1"} {
		assert.Equal(t, http.StatusUnauthorized, e.do(t, http.MethodGet, path, "", 0).Code, path)
	}
}

func TestRouter_TransferRoundTrip(t *testing.T) {
	t.Parallel()

	e := newEnv(t, nil)
	e.store.AddCourier(1)
	e.store.AddCourier(2)
	e.store.PutPackage(domain.Package{
		ID:             42,
		Name:           "Colis",
		Quantity:       1,
		DeliveryStatus: domain.StatusInTransit,
		CourierIDs:     []int64{1},
	})

	rr := e.do(t, http.MethodPost, "/packages/42/transfer",
		`{"fromCourierId":1,"toCourierId":2,"address":"12 Rue X","postalCode":"75000","city":"Paris"}`, 1)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	code := decodeField(t, rr.Body.String(), "transferCode")
	require.NotEmpty(t, code)

	pending := e.do(t, http.MethodGet, "/packages/pending-transfers?userId=2", "", 2)
	require.Equal(t, http.StatusOK, pending.Code)
	assert.Contains(t, pending.Body.String(), `"id":42`)

	wrong := e.do(t, http.MethodPost, "/packages/42/confirm-transfer", `{"toCourierId":2,"code":"ZZZZZZ"}`, 2)
	assert.Equal(t, http.StatusUnprocessableEntity, wrong.Code)

	ok := e.do(t, http.MethodPost, "/packages/42/confirm-transfer", `{"toCourierId":2,"code":"`+code+`"}`, 2)
	require.Equal(t, http.StatusOK, ok.Code, ok.Body.String())

	again := e.do(t, http.MethodPost, "/packages/42/confirm-transfer", `{"toCourierId":2,"code":"`+code+`"}`, 2)
	assert.Equal(t, http.StatusConflict, again.Code)

	pending = e.do(t, http.MethodGet, "/packages/pending-transfers?userId=2", "", 2)
	assert.JSONEq(t, `[]`, pending.Body.String())

	mine := e.do(t, http.MethodGet, "/packages/mydeliveries?userId=2", "", 2)
	assert.Contains(t, mine.Body.String(), `"id":42`)
	assert.Contains(t, mine.Body.String(), `"deliveryStatus":"en transit"`)

	progress := e.do(t, http.MethodGet, "/transfer-history/progress/42", "", 1)
	require.Equal(t, http.StatusOK, progress.Code)
	assert.Contains(t, progress.Body.String(), `"livreur1Progress":100`)
}

func TestRouter_RateLimited(t *testing.T) {
	t.Parallel()

	e := newEnv(t, ratelimit.NewTokenBucketLimiter(nil, ratelimit.Config{Rate: 0.001, Burst: 1}))
	e.store.AddCourier(1)

	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/couriers", "", 1).Code)
	assert.Equal(t, http.StatusTooManyRequests, e.do(t, http.MethodGet, "/couriers", "", 1).Code)
	assert.Equal(t, http.StatusOK, e.do(t, http.MethodGet, "/ping", "", 0).Code, "ops endpoints are not limited")
}

func decodeField(t *testing.T, body, field string) string {
	t.Helper()
	key := `"` + field + `":"`
	i := strings.Index(body, key)
	require.GreaterOrEqual(t, i, 0, body)
	rest := body[i+len(key):]
	return rest[:strings.Index(rest, `"`)]
}
