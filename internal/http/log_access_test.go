package handlers_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogs_SubmitIsAudited(t *testing.T) {
	env := newTestApp(t, testConfig())
	b := newBrowser(t, env.app)

	entries := captureLogs(t, func() {
		b.open()
		b.do("POST", "/api/v1/orders", nil)
		b.do("POST", "/api/v1/cart/items", map[string]any{"productId": "pampers-1"})
		b.do("PUT", "/api/v1/checkout/store", map[string]any{"storeId": "ultra-vasco"})
		fillCustomer(t, b)
		b.do("POST", "/api/v1/orders", nil)
	})

	reject, ok := findLog(entries, "order.reject")
	require.True(t, ok, "order.reject not logged")
	assert.Equal(t, "NO_STORE_SELECTED", reject.Fields["kind"])

	add, ok := findLog(entries, "cart.add")
	require.True(t, ok, "cart.add not logged")
	assert.Equal(t, "pampers-1", add.Fields["product"])

	compose, ok := findLog(entries, "order.compose")
	require.True(t, ok, "order.compose not logged")
	assert.Equal(t, "audit", compose.Kind)
	assert.Equal(t, "54.99", compose.Fields["total"])
	assert.EqualValues(t, 1, compose.Fields["lines"])

	submit, ok := findLog(entries, "order.submit")
	require.True(t, ok, "order.submit not logged")
	assert.Equal(t, "audit", submit.Kind)
	assert.Equal(t, "5521968450574", submit.Fields["contact"])

	_, ok = findLog(entries, "notify.error")
	assert.True(t, ok, "shopper-facing errors are mirrored to the log")
}

func TestLogs_SecurityEvents(t *testing.T) {
	env := newTestApp(t, testConfig())
	b := newBrowser(t, env.app)
	b.open()

	entries := captureLogs(t, func() {
		b.do("POST", "/api/v1/cart/items", map[string]any{"productId": "../../etc"})
		delete(b.cookies, "csrf_")
		b.do("POST", "/api/v1/cart/items", map[string]any{"productId": "pampers-1"})
	})

	fail, ok := findLog(entries, "validation.fail")
	require.True(t, ok, "validation.fail not logged")
	assert.Equal(t, "warn", fail.Level)
	assert.Equal(t, "productId", fail.Fields["field"])

	csrfFail, ok := findLog(entries, "csrf.fail")
	require.True(t, ok, "csrf.fail not logged")
	assert.Equal(t, "warn", csrfFail.Level)
}

func TestLogs_RejectedValueIsClipped(t *testing.T) {
	env := newTestApp(t, testConfig())
	b := newBrowser(t, env.app)
	b.open()

	long := strings.Repeat("<", 500)
	entries := captureLogs(t, func() {
		b.do("GET", "/api/v1/stores?city="+url.QueryEscape(long), nil)
		b.do("PUT", "/api/v1/checkout/customer", map[string]any{"paymentMethod": "boleto"})
	})

	var seen []logEntry
	for _, e := range entries {
		if e.Action == "validation.fail" {
			seen = append(seen, e)
		}
	}
	require.Len(t, seen, 2)
	assert.Equal(t, "city", seen[0].Fields["field"])
	assert.Equal(t, strings.Repeat("<", 64), seen[0].Fields["value"])
	assert.Equal(t, "paymentMethod", seen[1].Fields["field"])
	assert.Equal(t, "boleto", seen[1].Fields["value"])
}
