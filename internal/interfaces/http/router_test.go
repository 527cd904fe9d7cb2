package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/AssetVerse-api/internal/application/analytics"
	"github.com/jhoicas/AssetVerse-api/internal/application/billing"
	"github.com/jhoicas/AssetVerse-api/internal/application/usecase"
	"github.com/jhoicas/AssetVerse-api/internal/application/workflow"
	"github.com/jhoicas/AssetVerse-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/AssetVerse-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/AssetVerse-api/internal/interfaces/http"
)

type stubGateway struct {
	paid bool
	err  error
}

func (g *stubGateway) CreateSession(_ context.Context, in billing.CheckoutSessionInput) (*billing.CheckoutSession, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &billing.CheckoutSession{ID: "cs_test", URL: "https://pay.test/cs_test"}, nil
}

func (g *stubGateway) GetSession(_ context.Context, id string) (*billing.CheckoutSession, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &billing.CheckoutSession{ID: id, Paid: g.paid, AmountTotal: 2000}, nil
}

type testAPI struct {
	app     *fiber.App
	store   *memory.Store
	gateway *stubGateway
}

func newTestAPI(t *testing.T, jwtSecret string) *testAPI {
	t.Helper()
	store := memory.NewStore()
	gw := &stubGateway{paid: true}
	dashboardUC := appanalytics.NewDashboardUseCase(store.Dashboard(), nil, 0, nil)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		AssetUC:     usecase.NewAssetUseCase(store.Assets()),
		RequestUC:   workflow.NewRequestUseCase(store, store.Assets(), store.Requests()),
		UserUC:      usecase.NewUserUseCase(store.Users()),
		DashboardUC: dashboardUC,
		ReportUC:    appanalytics.NewReportUseCase(store.Assets(), dashboardUC, infrapdf.NewMarotoReportGenerator()),
		CheckoutUC: billing.NewCheckoutUseCase(gw, store.Packages(), billing.CheckoutConfig{
			Currency: "usd", ClientURL: "http://localhost:5173",
		}),
		JWTSecret: jwtSecret,
	})
	return &testAPI{app: app, store: store, gateway: gw}
}

// call lanza la petición y decodifica el cuerpo JSON en out (si out no es nil).
func (a *testAPI) call(t *testing.T, method, path, body, auth string, out any) int {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestRoot(t *testing.T) {
	api := newTestAPI(t, "")
	resp, err := api.app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "AssetVerse Backend Running!", string(body))
}

// Escenario completo: alta de laptop, solicitud de 3, aprobación y segunda aprobación rechazada.
func TestAPI_EscenarioLaptop(t *testing.T) {
	api := newTestAPI(t, "")

	var created map[string]any
	status := api.call(t, http.MethodPost, "/assets", `{"name":"Laptop ","quantity":10,"type":"electronics"}`, "", &created)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, created["acknowledged"])
	assetID := created["insertedId"].(string)

	var asset map[string]any
	require.Equal(t, http.StatusOK, api.call(t, http.MethodGet, "/assets/"+assetID, "", "", &asset))
	assert.Equal(t, "laptop", asset["name"])
	assert.EqualValues(t, 10, asset["quantity"])

	var req map[string]any
	status = api.call(t, http.MethodPost, "/asset_requests", `{"assetId":"`+assetID+`","quantity":3}`, "", &req)
	require.Equal(t, http.StatusCreated, status)
	requestID := req["insertedId"].(string)

	var list []map[string]any
	require.Equal(t, http.StatusOK, api.call(t, http.MethodGet, "/asset_requests", "", "", &list))
	require.Len(t, list, 1)
	assert.Equal(t, "pending", list[0]["status"])
	assert.Equal(t, "laptop", list[0]["assetName"])
	assert.Equal(t, "Anonymous", list[0]["userName"])

	var msg map[string]string
	require.Equal(t, http.StatusOK, api.call(t, http.MethodPut, "/asset_requests/"+requestID+"/approve", "", "", &msg))
	assert.Equal(t, "Request approved", msg["message"])

	require.Equal(t, http.StatusOK, api.call(t, http.MethodGet, "/assets/"+assetID, "", "", &asset))
	assert.EqualValues(t, 7, asset["quantity"])

	assert.Equal(t, http.StatusConflict, api.call(t, http.MethodPut, "/asset_requests/"+requestID+"/approve", "", "", &msg))
	require.Equal(t, http.StatusOK, api.call(t, http.MethodGet, "/assets/"+assetID, "", "", &asset))
	assert.EqualValues(t, 7, asset["quantity"])
}

func TestAPI_StockInsuficiente(t *testing.T) {
	api := newTestAPI(t, "")
	var created map[string]any
	api.call(t, http.MethodPost, "/assets", `{"name":"Mouse","quantity":"1","type":"accessory"}`, "", &created)
	assetID := created["insertedId"].(string)

	var req map[string]any
	api.call(t, http.MethodPost, "/asset_requests", `{"assetId":"`+assetID+`","quantity":"2"}`, "", &req)

	var msg map[string]string
	assert.Equal(t, http.StatusBadRequest, api.call(t, http.MethodPut, "/asset_requests/"+req["insertedId"].(string)+"/approve", "", "", &msg))
	assert.Equal(t, "Not enough stock", msg["message"])
}

func TestAPI_ErroresDeValidacion(t *testing.T) {
	api := newTestAPI(t, "")
	var msg map[string]string

	assert.Equal(t, http.StatusBadRequest, api.call(t, http.MethodGet, "/assets/abc", "", "", &msg))
	assert.Equal(t, "Invalid asset ID", msg["message"])

	assert.Equal(t, http.StatusNotFound, api.call(t, http.MethodGet, "/assets/00000000-0000-0000-0000-000000000009", "", "", &msg))
	assert.Equal(t, "Asset not found", msg["message"])

	assert.Equal(t, http.StatusBadRequest, api.call(t, http.MethodPut, "/assets/00000000-0000-0000-0000-000000000009", `{"name":"x"}`, "", &msg))
	assert.Equal(t, "Missing required fields", msg["message"])

	assert.Equal(t, http.StatusBadRequest, api.call(t, http.MethodGet, "/users/123", "", "", &msg))
	assert.Equal(t, "Invalid user ID", msg["message"])

	assert.Equal(t, http.StatusBadRequest, api.call(t, http.MethodPost, "/users", `{"name":"Ana"}`, "", &msg))
	assert.Equal(t, "Missing required fields", msg["message"])

	assert.Equal(t, http.StatusNotFound, api.call(t, http.MethodPost, "/asset_requests",
		`{"assetId":"00000000-0000-0000-0000-000000000009","quantity":1}`, "", &msg))
}

func TestAPI_CantidadConExponenteEnorme(t *testing.T) {
	api := newTestAPI(t, "")
	var created map[string]any
	api.call(t, http.MethodPost, "/assets", `{"name":"Mouse","quantity":1}`, "", &created)

	var msg map[string]string
	assert.Equal(t, http.StatusBadRequest, api.call(t, http.MethodPost, "/asset_requests",
		`{"assetId":"`+created["insertedId"].(string)+`","quantity":1e10000000}`, "", &msg))
	assert.Equal(t, "Invalid quantity", msg["message"])

	assert.Equal(t, http.StatusBadRequest, api.call(t, http.MethodPost, "/assets", `{"name":"Silla","quantity":"1e2000000000"}`, "", &msg))
	assert.Equal(t, "Invalid quantity", msg["message"])
}

func TestAPI_DeleteAsset(t *testing.T) {
	api := newTestAPI(t, "")
	var created map[string]any
	api.call(t, http.MethodPost, "/assets", `{"name":"Desk"}`, "", &created)

	var del struct {
		Message string `json:"message"`
		Result  struct {
			Acknowledged bool  `json:"acknowledged"`
			DeletedCount int64 `json:"deletedCount"`
		} `json:"result"`
	}
	require.Equal(t, http.StatusOK, api.call(t, http.MethodDelete, "/assets/"+created["insertedId"].(string), "", "", &del))
	assert.Equal(t, "Asset deleted", del.Message)
	assert.True(t, del.Result.Acknowledged)
	assert.Equal(t, int64(1), del.Result.DeletedCount)
}

func TestAPI_RolPorEmail(t *testing.T) {
	api := newTestAPI(t, "")
	var created map[string]any
	require.Equal(t, http.StatusCreated, api.call(t, http.MethodPost, "/users", `{"name":"Ana","email":"ana@x.com","role":"hr"}`, "", &created))
	assert.Equal(t, true, created["success"])

	var role map[string]string
	require.Equal(t, http.StatusOK, api.call(t, http.MethodGet, "/users/ana@x.com/role", "", "", &role))
	assert.Equal(t, "hr", role["role"])

	require.Equal(t, http.StatusOK, api.call(t, http.MethodGet, "/users/nadie@x.com/role", "", "", &role))
	assert.Equal(t, "user", role["role"])
}

func TestAPI_DashboardBar(t *testing.T) {
	api := newTestAPI(t, "")
	ids := map[string]string{}
	for _, name := range []string{"A", "B"} {
		var created map[string]any
		api.call(t, http.MethodPost, "/assets", `{"name":"`+name+`","quantity":50,"type":"t"}`, "", &created)
		ids[name] = created["insertedId"].(string)
	}
	for _, name := range []string{"A", "A", "B", "A", "A"} {
		require.Equal(t, http.StatusCreated, api.call(t, http.MethodPost, "/asset_requests", `{"assetId":"`+ids[name]+`","quantity":1}`, "", nil))
	}

	var bar []map[string]any
	require.Equal(t, http.StatusOK, api.call(t, http.MethodGet, "/api/dashboard/bar", "", "", &bar))
	require.Len(t, bar, 2)
	assert.Equal(t, "a", bar[0]["_id"])
	assert.EqualValues(t, 4, bar[0]["count"])
	assert.Equal(t, "b", bar[1]["_id"])

	var pie []map[string]any
	require.Equal(t, http.StatusOK, api.call(t, http.MethodGet, "/api/dashboard/pie", "", "", &pie))
	require.Len(t, pie, 1)
	assert.EqualValues(t, 2, pie[0]["count"])
}

func TestAPI_Stripe(t *testing.T) {
	api := newTestAPI(t, "")

	var session map[string]string
	require.Equal(t, http.StatusOK, api.call(t, http.MethodPost, "/api/stripe/create-checkout-session",
		`{"hrId":"hr-1","packageType":"Standard","amount":20}`, "", &session))
	assert.Equal(t, "https://pay.test/cs_test", session["url"])

	var confirm map[string]any
	require.Equal(t, http.StatusOK, api.call(t, http.MethodGet, "/api/stripe/success?session_id=cs_test&hrId=hr-1&packageType=Standard", "", "", &confirm))
	assert.Equal(t, true, confirm["success"])
	assert.EqualValues(t, 20, confirm["packageLimit"])

	var pkg map[string]any
	require.Equal(t, http.StatusOK, api.call(t, http.MethodGet, "/api/packages/hr-1", "", "", &pkg))
	assert.Equal(t, "Standard", pkg["packageType"])

	var invalid map[string]string
	assert.Equal(t, http.StatusBadRequest, api.call(t, http.MethodPost, "/api/stripe/create-checkout-session",
		`{"hrId":"hr-1","packageType":"Basic","amount":1e10000000}`, "", &invalid))
	assert.Equal(t, "Invalid amount", invalid["error"])

	api.gateway.err = errors.New("stripe caído")
	var failed map[string]string
	assert.Equal(t, http.StatusInternalServerError, api.call(t, http.MethodPost, "/api/stripe/create-checkout-session",
		`{"hrId":"hr-1","packageType":"Basic","amount":5}`, "", &failed))
	assert.Equal(t, "Stripe session creation failed", failed["error"])

	assert.Equal(t, http.StatusInternalServerError, api.call(t, http.MethodGet, "/api/stripe/success?session_id=cs_x&hrId=hr-1", "", "", &failed))
	assert.Equal(t, "Error verifying payment.", failed["error"])
}

func TestAPI_StripePagoPendiente(t *testing.T) {
	api := newTestAPI(t, "")
	api.gateway.paid = false

	var confirm map[string]any
	require.Equal(t, http.StatusOK, api.call(t, http.MethodGet, "/api/stripe/success?session_id=cs_test&hrId=hr-9&packageType=Premium", "", "", &confirm))
	assert.Equal(t, false, confirm["success"])
	assert.Equal(t, http.StatusNotFound, api.call(t, http.MethodGet, "/api/packages/hr-9", "", "", nil))
}

func TestAPI_ReportePDF(t *testing.T) {
	api := newTestAPI(t, "")
	api.call(t, http.MethodPost, "/assets", `{"name":"Laptop","quantity":3,"type":"electronics"}`, "", nil)

	resp, err := api.app.Test(httptest.NewRequest(http.MethodGet, "/api/reports/assets.pdf", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(body), "%PDF"))
}

func TestAPI_AutenticacionActiva(t *testing.T) {
	api := newTestAPI(t, testJWTSecret)

	assert.Equal(t, http.StatusUnauthorized, api.call(t, http.MethodPost, "/assets", `{"name":"Laptop"}`, "", nil))
	assert.Equal(t, http.StatusForbidden, api.call(t, http.MethodPost, "/assets", `{"name":"Laptop"}`, tokenForRole(t, "user"), nil))
	assert.Equal(t, http.StatusCreated, api.call(t, http.MethodPost, "/assets", `{"name":"Laptop"}`, tokenForRole(t, "hr"), nil))

	// Las lecturas y las solicitudes de empleados siguen abiertas.
	assert.Equal(t, http.StatusOK, api.call(t, http.MethodGet, "/assets", "", "", nil))
}
