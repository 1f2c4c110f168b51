package cookie

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSetCookie(t *testing.T) {
	t.Parallel()
	u, _ := url.Parse("http://example.com/")

	t.Run("name and value", func(t *testing.T) {
		c := ParseSetCookie("sid=abc123", u)
		require.NotNil(t, c)
		assert.Equal(t, "sid", c.Name)
		assert.Equal(t, "abc123", c.Value)
		assert.Empty(t, c.Domain)
		assert.Equal(t, "/", c.Path)
		assert.True(t, c.Expires.IsZero())
		assert.Equal(t, "sid=abc123", c.String())
	})

	t.Run("all attributes", func(t *testing.T) {
		c := ParseSetCookie("token=xyz; Path=/api; HttpOnly; Secure; SameSite=Strict", u)
		require.NotNil(t, c)
		assert.Equal(t, "/api", c.Path)
		assert.True(t, c.HttpOnly)
		assert.True(t, c.Secure)
		assert.Equal(t, SameSiteStrict, c.SameSite)
		assert.Equal(t, "token=xyz", c.String())
	})

	t.Run("malformed", func(t *testing.T) {
		for _, value := range []string{"", ";", "novalue", "=bar", "; Path=/"} {
			assert.Nil(t, ParseSetCookie(value, u), value)
		}
	})

	t.Run("quoted value", func(t *testing.T) {
		c := ParseSetCookie(`sid="abc 123"`, u)
		require.NotNil(t, c)
		assert.Equal(t, "abc 123", c.Value)
	})

	t.Run("unknown attributes ignored", func(t *testing.T) {
		c := ParseSetCookie("sid=1; Version=1; Priority=High; Partitioned", u)
		require.NotNil(t, c)
		assert.Equal(t, "1", c.Value)
	})

	t.Run("attribute case insensitive", func(t *testing.T) {
		c := ParseSetCookie("sid=1; PATH=/x; SECURE; httponly; samesite=LAX", u)
		require.NotNil(t, c)
		assert.Equal(t, "/x", c.Path)
		assert.True(t, c.Secure)
		assert.True(t, c.HttpOnly)
		assert.Equal(t, SameSiteLax, c.SameSite)
	})

	t.Run("samesite unknown value ignored", func(t *testing.T) {
		c := ParseSetCookie("sid=1; SameSite=banana", u)
		require.NotNil(t, c)
		assert.Empty(t, c.SameSite)
	})
}

func TestParseSetCookieDomain(t *testing.T) {
	t.Parallel()
	u, _ := url.Parse("http://sub.example.com/")

	testCases := []struct {
		value, want string
	}{
		{"a=1; Domain=example.com", "example.com"},
		{"a=1; Domain=.example.com", "example.com"},
		{"a=1; Domain=EXAMPLE.com", "example.com"},
		{"a=1; Domain=sub.example.com", "sub.example.com"},
		{"a=1; Domain=other.com", ""},
		{"a=1; Domain=b.example.com", ""},
		{"a=1; Domain=.", ""},
		{"a=1", ""},
	}

	for _, testCase := range testCases {
		t.Run(testCase.value, func(t *testing.T) {
			c := ParseSetCookie(testCase.value, u)
			require.NotNil(t, c)
			assert.Equal(t, testCase.want, c.Domain)
		})
	}
}

func TestParseSetCookieDefaultPath(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		url, want string
	}{
		{"http://example.com", "/"},
		{"http://example.com/", "/"},
		{"http://example.com/abc", "/"},
		{"http://example.com/api/users/123", "/api/users"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.url, func(t *testing.T) {
			u, _ := url.Parse(testCase.url)
			c := ParseSetCookie("sid=1", u)
			require.NotNil(t, c)
			assert.Equal(t, testCase.want, c.Path)
		})
	}
}

func TestParseSetCookieExpiry(t *testing.T) {
	t.Parallel()
	u, _ := url.Parse("http://example.com/")
	wall := time.Date(2015, 10, 21, 7, 28, 0, 0, time.UTC)

	t.Run("max-age", func(t *testing.T) {
		c := ParseSetCookie("sid=1; Max-Age=3600", u)
		require.NotNil(t, c)
		assert.InDelta(t, time.Now().Add(time.Hour).Unix(), c.Expires.Unix(), 5)
	})

	t.Run("max-age invalid", func(t *testing.T) {
		c := ParseSetCookie("sid=1; Max-Age=never", u)
		require.NotNil(t, c)
		assert.True(t, c.Expires.IsZero())
	})

	t.Run("expires rfc1123", func(t *testing.T) {
		c := ParseSetCookie("sid=1; Expires=Wed, 21 Oct 2015 07:28:00 GMT", u)
		require.NotNil(t, c)
		assert.Equal(t, wall, c.Expires)
	})

	t.Run("expires dashed", func(t *testing.T) {
		c := ParseSetCookie("sid=1; Expires=Wed, 21-Oct-2015 07:28:00 GMT", u)
		require.NotNil(t, c)
		assert.Equal(t, wall, c.Expires)
	})

	t.Run("expires invalid", func(t *testing.T) {
		c := ParseSetCookie("sid=1; Expires=banana", u)
		require.NotNil(t, c)
		assert.True(t, c.Expires.IsZero())
	})

	t.Run("last expiry attribute wins", func(t *testing.T) {
		c := ParseSetCookie("sid=1; Max-Age=3600; Expires=Wed, 21 Oct 2015 07:28:00 GMT", u)
		require.NotNil(t, c)
		assert.Equal(t, wall, c.Expires)

		c = ParseSetCookie("sid=1; Expires=Wed, 21 Oct 2015 07:28:00 GMT; Max-Age=3600", u)
		require.NotNil(t, c)
		assert.InDelta(t, time.Now().Add(time.Hour).Unix(), c.Expires.Unix(), 5)
	})

	t.Run("invalid expires keeps max-age", func(t *testing.T) {
		c := ParseSetCookie("sid=1; Max-Age=60; Expires=banana", u)
		require.NotNil(t, c)
		assert.InDelta(t, time.Now().Add(time.Minute).Unix(), c.Expires.Unix(), 5)
	})
}
