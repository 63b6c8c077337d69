package handler

import (
	"net/http"
	"time"

	"github.com/yndnr/memohalo-go/pkg/token"
)

// DefaultCookieName is the session cookie name used when none is configured.
const DefaultCookieName = "token"

// Cookies reads and writes the session cookie. When Secret is set the
// cookie value is signed and unsigned values are rejected.
type Cookies struct {
	Name   string
	Secret string
	Secure bool
}

// Set writes the session cookie carrying tok.
func (c *Cookies) Set(w http.ResponseWriter, tok string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    token.Sign(tok, c.Secret),
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Clear expires the session cookie.
func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Token returns the session token from r, or "" when the cookie is
// missing or its signature does not verify.
func (c *Cookies) Token(r *http.Request) string {
	ck, err := r.Cookie(c.Name)
	if err != nil {
		return ""
	}
	tok, ok := token.Unsign(ck.Value, c.Secret)
	if !ok {
		return ""
	}
	return tok
}
