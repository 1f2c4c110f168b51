package js

import (
	"net/http"
	"net/url"
	"time"

	"github.com/dop251/goja"
	"github.com/spf13/cast"
	"github.com/yuniko/biscuit/cookie"
	"github.com/yuniko/biscuit/di"
)

func init() {
	Register("cookie", &CookieModule{})
}

// CookieModule js module
type CookieModule struct{}

// Exports returns module instance
func (*CookieModule) Exports() any {
	return &Cookie{di.MustResolve[cookie.Store]()}
}

// Cookie manages storage and use of cookies in HTTP requests.
type Cookie struct {
	store cookie.Store
}

// Get returns the cookie string for the given URL.
func (c *Cookie) Get(call goja.FunctionCall, vm *goja.Runtime) goja.Value {
	u, err := url.Parse(call.Argument(0).String())
	if err != nil {
		Throw(vm, err)
	}
	return vm.ToValue(c.store.CookieString(u))
}

// GetAll returns the cookies matched for the given URL.
func (c *Cookie) GetAll(call goja.FunctionCall, vm *goja.Runtime) goja.Value {
	u, err := url.Parse(call.Argument(0).String())
	if err != nil {
		Throw(vm, err)
	}
	cookies := c.store.Cookies(u)
	ret := make([]goja.Value, 0, len(cookies))
	for _, ck := range cookies {
		ret = append(ret, toObj(ck, vm))
	}
	return vm.ToValue(ret)
}

// Set handles the receipt of a cookie in a reply for the given URL.
// The second argument is a Set-Cookie string or an object with the
// cookie fields.
func (c *Cookie) Set(call goja.FunctionCall, vm *goja.Runtime) (ret goja.Value) {
	u, err := url.Parse(call.Argument(0).String())
	if err != nil {
		Throw(vm, err)
	}
	switch arg := call.Argument(1).Export().(type) {
	case map[string]any:
		c.store.SetCookies(u, []*http.Cookie{toCookie(arg)})
	default:
		c.store.SetCookieString(u, call.Argument(1).String())
	}
	return
}

// Del handles the deletion of the cookies stored for the given URL.
func (c *Cookie) Del(call goja.FunctionCall, vm *goja.Runtime) (ret goja.Value) {
	u, err := url.Parse(call.Argument(0).String())
	if err != nil {
		Throw(vm, err)
	}
	c.store.DeleteCookie(u)
	return
}

var sameSiteMapping = [...]string{
	http.SameSiteDefaultMode: "",
	http.SameSiteLaxMode:     "lax",
	http.SameSiteStrictMode:  "strict",
	http.SameSiteNoneMode:    "none",
}

func toObj(cookie *http.Cookie, vm *goja.Runtime) goja.Value {
	var expires int64
	if !cookie.Expires.IsZero() {
		expires = cookie.Expires.Unix()
	}
	o := vm.NewObject()
	_ = o.Set("domain", vm.ToValue(cookie.Domain))
	_ = o.Set("expires", vm.ToValue(expires))
	_ = o.Set("httpOnly", vm.ToValue(cookie.HttpOnly))
	_ = o.Set("name", vm.ToValue(cookie.Name))
	_ = o.Set("path", vm.ToValue(cookie.Path))
	_ = o.Set("sameSite", vm.ToValue(sameSiteMapping[cookie.SameSite]))
	_ = o.Set("secure", vm.ToValue(cookie.Secure))
	_ = o.Set("value", vm.ToValue(cookie.Value))
	_ = o.Set("toString", func(goja.FunctionCall) goja.Value {
		return vm.ToValue(cookie.String())
	})
	return o
}

func toCookie(o map[string]any) *http.Cookie {
	var sameSite = http.SameSiteDefaultMode
	switch cast.ToString(o["sameSite"]) {
	case "lax":
		sameSite = http.SameSiteLaxMode
	case "strict":
		sameSite = http.SameSiteStrictMode
	case "none":
		sameSite = http.SameSiteNoneMode
	}
	ck := &http.Cookie{
		Domain:   cast.ToString(o["domain"]),
		Name:     cast.ToString(o["name"]),
		Path:     cast.ToString(o["path"]),
		SameSite: sameSite,
		Value:    cast.ToString(o["value"]),
		MaxAge:   cast.ToInt(o["maxAge"]),
		Secure:   cast.ToBool(o["secure"]),
		HttpOnly: cast.ToBool(o["httpOnly"]),
	}
	if expires := cast.ToInt64(o["expires"]); expires != 0 {
		ck.Expires = time.Unix(expires, 0)
	}
	return ck
}
