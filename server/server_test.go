package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/teecush/tracker"
	"github.com/teecush/tracker/date"
	"github.com/teecush/tracker/insight"
	"github.com/teecush/tracker/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

type failingSource struct{}

func (failingSource) Fetch(context.Context) (tracker.Table, error) {
	return nil, errors.New("sheet unavailable")
}
func (failingSource) String() string { return "sheet" }

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := tracker.NewStore(filepath.Join(t.TempDir(), "data.csv"), "USD")
	g := &insight.Local{Today: func() date.Date { return date.New(2030, 1, 1) }}
	return New(store, failingSource{}, g)
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var result map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response %q: %v", rec.Body.String(), err)
	}
	return result
}

func assertErrorMessage(t *testing.T, result map[string]any, code, message string) {
	t.Helper()
	e, ok := result["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected an error object, got %v", result)
	}
	if e["code"] != code || e["message"] != message {
		t.Errorf("expected error %s %q, got %v %q", code, message, e["code"], e["message"])
	}
}

func seed(t *testing.T, r http.Handler) {
	t.Helper()
	for _, body := range []string{
		`{"date":"2024-01-01","investment":1000,"totalBalance":1000,"accountType":"TFSA","notes":"first"}`,
		`{"date":"2024-06-01","investment":0,"totalBalance":1200,"accountType":"TFSA"}`,
	} {
		if rec := doRequest(r, "POST", "/api/transactions", body); rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	}
}

func TestServer_Metrics(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		r := newTestServer(t).Router()
		rec := doRequest(r, "GET", "/api/metrics", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		m := parseJSON(t, rec)["metrics"].(map[string]any)
		if m["monthsInvested"].(float64) != 0 {
			t.Errorf("expected monthsInvested=0, got %v", m["monthsInvested"])
		}
	})

	t.Run("after adding", func(t *testing.T) {
		r := newTestServer(t).Router()
		seed(t, r)
		result := parseJSON(t, doRequest(r, "GET", "/api/metrics", ""))
		m := result["metrics"].(map[string]any)
		earnings := m["totalEarnings"].(map[string]any)
		if earnings["amount"].(float64) != 200 || earnings["currency"] != "USD" {
			t.Errorf("expected totalEarnings=200 USD, got %v", earnings)
		}
		if m["monthsInvested"].(float64) != 5 {
			t.Errorf("expected monthsInvested=5, got %v", m["monthsInvested"])
		}
		if result["roi"].(float64) != 20 {
			t.Errorf("expected roi=20, got %v", result["roi"])
		}
	})
}

func TestServer_AddTransaction(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{"negative investment", `{"date":"2024-01-01","investment":-1,"totalBalance":1000,"accountType":"TFSA"}`, "Investment amount cannot be negative"},
		{"negative balance", `{"date":"2024-01-01","investment":1,"totalBalance":-1,"accountType":"TFSA"}`, "Total balance cannot be negative"},
		{"bad date", `{"date":"01/01/2024","investment":1,"totalBalance":1,"accountType":"TFSA"}`, "Invalid date format. Please use YYYY-MM-DD"},
		{"no account", `{"date":"2024-01-01","investment":1,"totalBalance":1,"accountType":" "}`, "Account type is required"},
		{"not json", `{"date":`, "Invalid request body"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestServer(t).Router()
			rec := doRequest(r, "POST", "/api/transactions", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			assertErrorMessage(t, parseJSON(t, rec), "INVALID_INPUT", tc.message)
		})
	}
}

func TestServer_Transactions(t *testing.T) {
	r := newTestServer(t).Router()
	seed(t, r)

	rec := doRequest(r, "GET", "/api/transactions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	txs := parseJSON(t, rec)["transactions"].([]any)
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if first := txs[0].(map[string]any); first["date"] != "2024-06-01" {
		t.Errorf("expected the newest transaction first, got %v", first["date"])
	}
}

func TestServer_DeleteTransaction(t *testing.T) {
	r := newTestServer(t).Router()
	seed(t, r)

	if rec := doRequest(r, "DELETE", "/api/transactions/x", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 on a non numeric index, got %d", rec.Code)
	}
	if rec := doRequest(r, "DELETE", "/api/transactions/3", ""); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on an index out of the log, got %d", rec.Code)
	}

	rec := doRequest(r, "DELETE", "/api/transactions/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["count"].(float64) != 1 {
		t.Errorf("expected 1 transaction left, got %v", result["count"])
	}
	removed := result["transaction"].(map[string]any)
	if removed["date"] != "2024-06-01" {
		t.Errorf("expected the newest transaction removed, got %v", removed["date"])
	}
}

func TestServer_Insights(t *testing.T) {
	r := newTestServer(t).Router()
	seed(t, r)

	got := parseJSON(t, doRequest(r, "GET", "/api/insights", ""))["insights"].(string)
	if !strings.HasPrefix(got, "💰 Excellent performance! Your portfolio has earned 20.0% returns") {
		t.Errorf("unexpected insights %q", got)
	}
}

func TestServer_Dashboard(t *testing.T) {
	r := newTestServer(t).Router()
	seed(t, r)

	rec := doRequest(r, "GET", "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("expected an html page, got %q", ct)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Errorf("expected a request id header")
	}
	body := rec.Body.String()
	for _, want := range []string{"<h1>Investment Portfolio Tracker</h1>", "<table>", "$1,200.00", "Excellent performance"} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard does not contain %q", want)
		}
	}
}

func TestServer_Refresh(t *testing.T) {
	r := newTestServer(t).Router()
	seed(t, r)

	result := parseJSON(t, doRequest(r, "POST", "/api/refresh", ""))
	if result["count"].(float64) != 2 {
		t.Errorf("expected the backup to be loaded, got %v", result)
	}
	warnings := result["warnings"].([]any)
	if len(warnings) != 2 || !strings.Contains(warnings[0].(string), "sheet unavailable") {
		t.Errorf("unexpected warnings %v", warnings)
	}
}
