package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Planta-api/internal/application/directory"
	"github.com/jhoicas/Planta-api/internal/application/downtime"
	"github.com/jhoicas/Planta-api/internal/application/dto"
	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/application/report"
	"github.com/jhoicas/Planta-api/internal/infrastructure/lock"
	"github.com/jhoicas/Planta-api/internal/infrastructure/persistence"
	infrareport "github.com/jhoicas/Planta-api/internal/infrastructure/report"
	apphttp "github.com/jhoicas/Planta-api/internal/interfaces/http"
	"github.com/jhoicas/Planta-api/internal/testutil"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testUser = "operador-1"

func buildTestApp(t *testing.T) (*fiber.App, testutil.Hierarchy) {
	t.Helper()
	s := testutil.NewStore(t)
	h := testutil.SeedHierarchy(t, s)

	locations := persistence.NewLocationRepository(s)
	divisions := persistence.NewDivisionRepository(s)
	lines := persistence.NewLineRepository(s)
	log := logger.Nop()

	dirUC := directory.NewUseCase(locations, divisions, lines, log)
	dtUC := downtime.NewUseCase(persistence.NewDowntimeRepository(s), lines, log)
	invUC := inventory.NewUseCase(
		persistence.NewInventoryRepository(s),
		persistence.NewInventoryTransactionRepository(s),
		persistence.NewTxRunner(s),
		lock.NewKeyed(),
		inventory.Directory{Locations: locations, Divisions: divisions, Lines: lines},
		inventory.Options{},
		log,
	)
	repUC := report.NewUseCase(invUC, dirUC, dtUC, infrareport.NewRenderer("test"), log)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		AppName:   "planta-test",
		Directory: dirUC,
		Downtime:  dtUC,
		Inventory: invUC,
		Report:    repUC,
		Log:       log,
	})
	return app, h
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any, user string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set(apphttp.HeaderUserID, user)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Directorio
// ──────────────────────────────────────────────────────────────────────────────

func TestDirectorio_ListaPlantaYDivision(t *testing.T) {
	app, h := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/locations", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	locs := decode[[]dto.LocationResponse](t, resp)
	require.Len(t, locs, 1)
	assert.Equal(t, "MUN", locs[0].Code)
	assert.Equal(t, "Mundhawa", locs[0].Name)

	resp = doRequest(t, app, http.MethodGet, "/api/divisions?location_id="+h.LocationID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	divs := decode[[]dto.DivisionResponse](t, resp)
	require.Len(t, divs, 1)
	assert.Equal(t, "FMD", divs[0].Code)
	assert.Equal(t, "Forging", divs[0].Name)
	assert.Equal(t, "Mundhawa", divs[0].LocationName)
}

func TestDirectorio_ErroresMapeados(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/lines/no-existe", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)

	resp = doRequest(t, app, http.MethodPost, "/api/divisions",
		map[string]any{"location_id": "no-existe", "code": "X", "name": "X"}, "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "location_id", body.Field)

	resp = doRequest(t, app, http.MethodPost, "/api/locations", map[string]any{"name": "Sin código"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "code", decode[dto.ErrorResponse](t, resp).Field)
}

func TestDirectorio_DesactivarOcultaDelListado(t *testing.T) {
	app, h := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/lines/"+h.LineID+"/deactivate", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[dto.LineResponse](t, resp).IsActive)

	resp = doRequest(t, app, http.MethodGet, "/api/lines", nil, "")
	assert.Empty(t, decode[[]dto.LineResponse](t, resp))

	resp = doRequest(t, app, http.MethodGet, "/api/lines/"+h.LineID, nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Paradas e impacto
// ──────────────────────────────────────────────────────────────────────────────

func TestParadas_ParcialAprobadaImpacta5Horas(t *testing.T) {
	app, h := buildTestApp(t)
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	resp := doRequest(t, app, http.MethodPost, "/api/downtimes", map[string]any{
		"line_id":                    h.LineID,
		"reason":                     "Cambio de matriz",
		"category":                   "changeover",
		"start_date_time":            start,
		"end_date_time":              start.Add(10 * time.Hour),
		"impact_type":                "partial",
		"capacity_reduction_percent": 50,
	}, testUser)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.DowntimeResponse](t, resp)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, testUser, created.CreatedBy)

	resp = doRequest(t, app, http.MethodPost, "/api/downtimes/"+created.ID+"/approve", nil, "supervisor")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet,
		"/api/lines/"+h.LineID+"/impact?from=2024-03-01T00:00:00Z&to=2024-03-02T00:00:00Z", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	imp := decode[dto.ImpactResponse](t, resp)
	assert.True(t, imp.Hours.Equal(decimal.NewFromInt(5)), imp.Hours.String())

	resp = doRequest(t, app, http.MethodPost, "/api/downtimes/"+created.ID+"/cancel", nil, testUser)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestParadas_SinActorRechazada(t *testing.T) {
	app, h := buildTestApp(t)
	start := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

	resp := doRequest(t, app, http.MethodPost, "/api/downtimes", map[string]any{
		"line_id":         h.LineID,
		"reason":          "Avería",
		"category":        "breakdown",
		"start_date_time": start,
		"end_date_time":   start.Add(time.Hour),
		"impact_type":     "full",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "created_by", decode[dto.ErrorResponse](t, resp).Field)
}

func TestImpacto_VentanaObligatoria(t *testing.T) {
	app, h := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/lines/"+h.LineID+"/capacity?to=2024-03-02", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "from", decode[dto.ErrorResponse](t, resp).Field)

	resp = doRequest(t, app, http.MethodGet, "/api/lines/"+h.LineID+"/capacity?from=ayer&to=2024-03-02", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Inventario
// ──────────────────────────────────────────────────────────────────────────────

func TestInventario_AjusteRegistraMovimiento(t *testing.T) {
	app, h := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/inventory", map[string]any{
		"part_id":     "P-100",
		"stage":       "forged",
		"quantity":    100,
		"location_id": h.LocationID,
	}, testUser)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	inv := decode[dto.InventoryResponse](t, resp)

	resp = doRequest(t, app, http.MethodPost, "/api/inventory/"+inv.ID+"/adjust",
		map[string]any{"delta": -30, "reason": "scrap"}, testUser)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 70, decode[dto.InventoryResponse](t, resp).Quantity)

	resp = doRequest(t, app, http.MethodGet, "/api/inventory/transactions?inventory_id="+inv.ID, nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	txs := decode[[]dto.InventoryTransactionResponse](t, resp)
	require.Len(t, txs, 1)
	assert.EqualValues(t, -30, txs[0].Quantity)
	assert.Equal(t, testUser, txs[0].CreatedBy)

	resp = doRequest(t, app, http.MethodGet, "/api/inventory/"+inv.ID+"/reconcile", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[dto.ReconcileResponse](t, resp).Balanced)

	resp = doRequest(t, app, http.MethodGet, "/api/inventory/summary", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	sum := decode[[]dto.StageSummaryResponse](t, resp)
	require.Len(t, sum, 1)
	assert.EqualValues(t, 70, sum[0].TotalQuantity)
}

func TestInventario_AjusteNegativoYSinActor(t *testing.T) {
	app, h := buildTestApp(t)

	resp := doRequest(t, app, http.MethodPost, "/api/inventory", map[string]any{
		"part_id": "P-200", "stage": "raw", "quantity": 10, "location_id": h.LocationID,
	}, testUser)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	inv := decode[dto.InventoryResponse](t, resp)

	resp = doRequest(t, app, http.MethodPost, "/api/inventory/"+inv.ID+"/adjust", map[string]any{"delta": -5}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "user_id", decode[dto.ErrorResponse](t, resp).Field)

	resp = doRequest(t, app, http.MethodPost, "/api/inventory/"+inv.ID+"/adjust", map[string]any{"delta": -50}, testUser)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/inventory/no-existe/adjust", map[string]any{"delta": 1}, testUser)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodPost, "/api/inventory/"+inv.ID+"/adjust", "no-json", testUser)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

// ──────────────────────────────────────────────────────────────────────────────
// Infraestructura e informes
// ──────────────────────────────────────────────────────────────────────────────

func TestHealthYMetrics(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]string](t, resp)["status"])

	resp = doRequest(t, app, http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), "go_goroutines")
}

func TestInformes_Descargas(t *testing.T) {
	app, _ := buildTestApp(t)

	resp := doRequest(t, app, http.MethodGet, "/api/reports/inventory-summary.xlsx", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
	resp.Body.Close()

	resp = doRequest(t, app, http.MethodGet, "/api/reports/capacity.pdf?from=2024-03-01&to=2024-03-08", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}
