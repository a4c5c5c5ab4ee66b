package console

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

const (
	testAccountID = 1
	testMenuID    = 2
)

// fakeVendor is an in-process stand-in for the QuickClick console. It records
// every call so tests can assert how many logins and per-product fetches an
// operation issued, and captures mutation bodies for inspection.
type fakeVendor struct {
	t *testing.T

	mu          sync.Mutex
	signins     int
	listGets    int
	productGets map[int]int
	lastCookie  string

	lastProductPut  json.RawMessage
	lastProductPost json.RawMessage
	lastSettingsPut json.RawMessage
	lastDayOffPost  json.RawMessage
	deletedDayOffID int

	// Knobs tests flip before issuing calls.
	noSigninCookies bool
	signinCookie    *http.Cookie
	settingsBody    string
	dayOffsBody     string
	productOrder    []int
	products        map[int]string
	productStatus   int
}

func newFakeVendor(t *testing.T) *fakeVendor {
	return &fakeVendor{
		t:            t,
		productGets:  make(map[int]int),
		products:     make(map[int]string),
		settingsBody: `[{"name":"Milk Tea House","to_go_waiting_time":"20"}]`,
		dayOffsBody:  `[{"id":11,"specialDate":"2026-01-01"}]`,
	}
}

func (f *fakeVendor) addProduct(id int, raw string) {
	f.products[id] = raw
	f.productOrder = append(f.productOrder, id)
}

func (f *fakeVendor) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/eaa/signin", f.handleSignin)
	mux.HandleFunc("/eaa/console/1/settings", f.handleSettings)
	mux.HandleFunc("/eaa/console/1/openingspecials", f.handleDayOffs)
	mux.HandleFunc("/eaa/console/1/openingspecials/", f.handleDayOff)
	mux.HandleFunc("/eaa/console/menus/2/products", f.handleProducts)
	mux.HandleFunc("/eaa/console/menus/2/products/", f.handleProduct)
	return mux
}

func (f *fakeVendor) handleSignin(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.signins++
	f.mu.Unlock()

	if f.noSigninCookies {
		w.WriteHeader(http.StatusOK)
		return
	}
	cookie := f.signinCookie
	if cookie == nil {
		cookie = &http.Cookie{
			Name:    sessionCookieName,
			Value:   "abc123",
			Expires: time.Now().Add(time.Hour),
		}
	}
	http.SetCookie(w, cookie)
	w.WriteHeader(http.StatusOK)
}

func (f *fakeVendor) recordCookie(r *http.Request) {
	f.mu.Lock()
	f.lastCookie = r.Header.Get("Cookie")
	f.mu.Unlock()
}

func (f *fakeVendor) handleSettings(w http.ResponseWriter, r *http.Request) {
	f.recordCookie(r)
	switch r.Method {
	case http.MethodGet:
		io.WriteString(w, f.settingsBody)
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.lastSettingsPut = body
		f.mu.Unlock()
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeVendor) handleDayOffs(w http.ResponseWriter, r *http.Request) {
	f.recordCookie(r)
	switch r.Method {
	case http.MethodGet:
		io.WriteString(w, f.dayOffsBody)
	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.lastDayOffPost = body
		f.mu.Unlock()
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeVendor) handleDayOff(w http.ResponseWriter, r *http.Request) {
	f.recordCookie(r)
	if r.Method != http.MethodDelete {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/eaa/console/1/openingspecials/"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.deletedDayOffID = id
	f.mu.Unlock()
}

func (f *fakeVendor) handleProducts(w http.ResponseWriter, r *http.Request) {
	f.recordCookie(r)
	switch r.Method {
	case http.MethodGet:
		f.mu.Lock()
		f.listGets++
		f.mu.Unlock()
		records := make([]string, 0, len(f.productOrder))
		for _, id := range f.productOrder {
			records = append(records, f.products[id])
		}
		io.WriteString(w, "["+strings.Join(records, ",")+"]")
	case http.MethodPost:
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.lastProductPost = body
		f.mu.Unlock()
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeVendor) handleProduct(w http.ResponseWriter, r *http.Request) {
	f.recordCookie(r)
	id, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/eaa/console/menus/2/products/"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if f.productStatus != 0 {
		w.WriteHeader(f.productStatus)
		return
	}

	switch r.Method {
	case http.MethodGet:
		f.mu.Lock()
		f.productGets[id]++
		record, ok := f.products[id]
		f.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		io.WriteString(w, record)
	case http.MethodPut:
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.lastProductPut = body
		f.mu.Unlock()
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeVendor) signinCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.signins
}

func (f *fakeVendor) productGetCount(id int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.productGets[id]
}

// newTestClient starts a fake vendor and a client pointed at it.
func newTestClient(t *testing.T) (*Client, *fakeVendor) {
	t.Helper()
	vendor := newFakeVendor(t)
	server := httptest.NewServer(vendor.handler())
	t.Cleanup(server.Close)

	client := New(Config{
		Username:  "owner@example.com",
		Password:  "secret",
		AccountID: testAccountID,
		MenuID:    testMenuID,
		BaseURL:   server.URL,
	}, discardLogger())
	return client, vendor
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
