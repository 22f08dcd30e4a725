package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type cartResp struct {
	OK        bool   `json:"ok"`
	CartCount int    `json:"cart_count"`
	Error     string `json:"error"`
}

func decodeCartResp(t *testing.T, resp *http.Response) cartResp {
	t.Helper()
	var out cartResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestCartAddSetsCookieAndCounts(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/cart/add/1", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeCartResp(t, resp)
	require.True(t, body.OK)
	require.Equal(t, 1, body.CartCount)

	ck := extractCookie(resp, "cart")
	require.NotNil(t, ck)

	// Second add with the cart cookie increments the same line.
	req := httptest.NewRequest("POST", "/cart/add/1", nil)
	req.AddCookie(ck)
	resp2, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 2, decodeCartResp(t, resp2).CartCount)
}

func TestCartAddUnknownProduct(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/cart/add/99", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.False(t, decodeCartResp(t, resp).OK)
	// No cart cookie on a failed add.
	require.Nil(t, extractCookie(resp, "cart"))
}

func TestCartAddGarbageID(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/cart/add/banana", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCartUpdateSetsAndRemoves(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/cart/add/1", nil))
	require.NoError(t, err)
	ck := extractCookie(resp, "cart")
	require.NotNil(t, ck)

	req := httptest.NewRequest("POST", "/cart/update", strings.NewReader(`{"1": 3, "2": 0}`))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(ck)
	resp2, err := app.Test(req)
	require.NoError(t, err)
	body := decodeCartResp(t, resp2)
	require.True(t, body.OK)
	require.Equal(t, 3, body.CartCount)
}

func TestCartUpdateBadBody(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest("POST", "/cart/update", strings.NewReader(`nope`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCartViewShowsLine(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/cart/add/1", nil))
	require.NoError(t, err)
	ck := extractCookie(resp, "cart")

	req := httptest.NewRequest("GET", "/cart", nil)
	req.AddCookie(ck)
	resp2, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	html, _ := io.ReadAll(resp2.Body)
	require.Contains(t, string(html), "Mug")
	require.Contains(t, string(html), "14.50")
}

func TestCartViewDropsDeletedProduct(t *testing.T) {
	app, store := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/cart/add/2", nil))
	require.NoError(t, err)
	ck := extractCookie(resp, "cart")

	require.NoError(t, store.Remove(2))

	req := httptest.NewRequest("GET", "/cart", nil)
	req.AddCookie(ck)
	resp2, err := app.Test(req)
	require.NoError(t, err)
	html, _ := io.ReadAll(resp2.Body)
	require.NotContains(t, string(html), "Tote")
	require.Contains(t, string(html), "cart is empty")
}

func TestCartClearRedirects(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/cart/clear", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusFound, resp.StatusCode)
	require.Equal(t, "/", resp.Header.Get("Location"))
}
