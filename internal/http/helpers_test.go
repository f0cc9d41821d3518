package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"ultrapopular/internal/catalog"
	"ultrapopular/internal/config"
	"ultrapopular/internal/http/handlers"
	"ultrapopular/internal/link"
	applog "ultrapopular/internal/log"
	"ultrapopular/internal/metrics"
	"ultrapopular/internal/repos"
	"ultrapopular/internal/session"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.TemplatesDir = "../../web/templates"
	cfg.StaticDir = "../../web/static"
	return cfg
}

type testEnv struct {
	app      *fiber.App
	reg      *prometheus.Registry
	sessions *session.Store
}

func newTestApp(t *testing.T, cfg config.Config) testEnv {
	t.Helper()
	return newTestAppWith(t, cfg, nil)
}

// newTestAppWith lets a test wrap the store directory the order service sees.
func newTestAppWith(t *testing.T, cfg config.Config, wrap func(catalog.Directory, *session.Store) catalog.Directory) testEnv {
	t.Helper()
	db, err := repos.OpenDB(cfg.DBDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sessions, err := session.NewStore(cfg.SessionMax, cfg.SessionTTL)
	require.NoError(t, err)
	links, err := link.New(cfg.LinkBaseURL)
	require.NoError(t, err)

	var stores catalog.Directory = repos.NewStoreRepo(db)
	if wrap != nil {
		stores = wrap(stores, sessions)
	}

	reg := prometheus.NewRegistry()
	deps := handlers.NewDeps(repos.NewProductRepo(db), stores, sessions, links, metrics.NewOrderMetrics(reg))
	app := handlers.NewApp(cfg, deps, handlers.AppOptions{Gatherer: reg})
	return testEnv{app: app, reg: reg, sessions: sessions}
}

// browser carries cookies between requests the way a real browser would.
type browser struct {
	t       *testing.T
	app     *fiber.App
	cookies map[string]string
}

func newBrowser(t *testing.T, app *fiber.App) *browser {
	return &browser{t: t, app: app, cookies: map[string]string{}}
}

func (b *browser) do(method, path string, body any) (*http.Response, []byte) {
	b.t.Helper()
	var r io.Reader
	switch v := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(v)
	default:
		raw, err := json.Marshal(v)
		require.NoError(b.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for name, value := range b.cookies {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	if tok := b.cookies["csrf_"]; tok != "" {
		req.Header.Set("X-Csrf-Token", tok)
	}
	resp, err := b.app.Test(req, -1)
	require.NoError(b.t, err)
	for _, c := range resp.Cookies() {
		b.cookies[c.Name] = c.Value
	}
	out, err := io.ReadAll(resp.Body)
	require.NoError(b.t, err)
	return resp, out
}

// open loads the storefront so the browser holds sid and csrf cookies.
func (b *browser) open() {
	b.t.Helper()
	resp, _ := b.do("GET", "/", nil)
	require.Equal(b.t, fiber.StatusOK, resp.StatusCode)
	require.NotEmpty(b.t, b.cookies["csrf_"], "csrf cookie missing")
	require.NotEmpty(b.t, b.cookies["sid"], "sid cookie missing")
}

type notice struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type apiReply struct {
	Session struct {
		Lines []struct {
			Product struct {
				ID string `json:"id"`
			} `json:"product"`
			Quantity int    `json:"quantity"`
			Subtotal string `json:"subtotal"`
		} `json:"lines"`
		ItemCount int    `json:"itemCount"`
		Total     string `json:"total"`
		StoreID   string `json:"storeId"`
		Customer  struct {
			Name string `json:"name"`
		} `json:"customer"`
		Addendum string `json:"addendum"`
	} `json:"session"`
	Notices []notice `json:"notices"`
	Error   struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	} `json:"error"`
	Contact string `json:"contact"`
	Message string `json:"message"`
	Link    string `json:"link"`
}

func decode(t *testing.T, raw []byte) apiReply {
	t.Helper()
	var r apiReply
	require.NoError(t, json.Unmarshal(raw, &r), string(raw))
	return r
}

type logEntry struct {
	Level  string         `json:"level"`
	Kind   string         `json:"kind"`
	Action string         `json:"action"`
	Fields map[string]any `json:"fields"`
}

type lockedBuf struct {
	mu sync.Mutex
	b  bytes.Buffer
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	buf := &lockedBuf{}
	applog.Init(applog.Options{Level: "debug", Output: buf})
	defer applog.Init(applog.Options{Output: io.Discard})

	fn()

	buf.mu.Lock()
	defer buf.mu.Unlock()
	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.b.String()), "\n") {
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findLog(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}
