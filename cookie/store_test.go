package cookie

import (
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCookieJar(t *testing.T) {
	t.Parallel()
	u, _ := url.Parse("http://example.com/")
	store := NewStore()

	store.SetCookies(u, []*http.Cookie{
		{Name: "sid", Value: "abc"},
		{Name: "lang", Value: "en", Path: "/docs"},
	})

	cookies := store.Cookies(u)
	require.Len(t, cookies, 1)
	assert.Equal(t, "sid", cookies[0].Name)
	assert.Equal(t, "abc", cookies[0].Value)

	docs, _ := url.Parse("http://example.com/docs/intro")
	assert.Len(t, store.Cookies(docs), 2)
}

func TestStoreSetCookiesMaxAge(t *testing.T) {
	t.Parallel()
	u, _ := url.Parse("http://example.com/")
	store := NewStore()

	store.SetCookies(u, []*http.Cookie{{Name: "sid", Value: "abc", MaxAge: 3600}})
	cookies := store.Cookies(u)
	require.Len(t, cookies, 1)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), cookies[0].Expires.Unix(), 5)

	// A negative MaxAge deletes the stored cookie.
	store.SetCookies(u, []*http.Cookie{{Name: "sid", Value: "", MaxAge: -1}})
	assert.Zero(t, store.Len())
}

func TestStoreStringSurface(t *testing.T) {
	t.Parallel()
	u, _ := url.Parse("https://github.com/")
	store := NewStore()

	store.SetCookieString(u, "has_recent_activity=1; path=/; secure; HttpOnly; SameSite=Lax")
	assert.Equal(t, "has_recent_activity=1", store.CookieString(u))

	store.DeleteCookie(u)
	assert.Empty(t, store.CookieString(u))
}

func TestStoreAdmin(t *testing.T) {
	t.Parallel()
	store := NewStore()

	store.SetCookie("sid", "abc", "example.com")
	store.SetCookie("lang", "en", "example.com")

	assert.Equal(t, map[string]string{"sid": "abc", "lang": "en"}, store.All())
	assert.Equal(t, 2, store.Len())

	store.Clear()
	assert.Empty(t, store.All())
	assert.Zero(t, store.Len())
}

func TestStoreSameSiteRoundTrip(t *testing.T) {
	t.Parallel()
	u, _ := url.Parse("http://example.com/")
	store := NewStore()

	store.SetCookies(u, []*http.Cookie{{Name: "sid", Value: "abc", SameSite: http.SameSiteStrictMode}})
	cookies := store.Cookies(u)
	require.Len(t, cookies, 1)
	assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
}

func TestStoreConcurrent(t *testing.T) {
	t.Parallel()
	u, _ := url.Parse("http://example.com/")
	store := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.SetCookieString(u, fmt.Sprintf("c%d=%d", i, i))
			store.CookieString(u)
			store.All()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 16, store.Len())
}
