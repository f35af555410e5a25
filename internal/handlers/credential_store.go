package handlers

import (
	"net/http"

	"github.com/Kenford20/wedding-approuter/internal/security"
)

// cookieCredentialStore adapts one request/response pair to the access
// gate's CredentialStore. The store is scoped to a single visitor request;
// no credential state lives server-side.
type cookieCredentialStore struct {
	r    *http.Request
	w    http.ResponseWriter
	name string
}

// NewCredentialStore builds the cookie-backed credential store for one
// request. The cookie name is fixed per deployment.
func NewCredentialStore(w http.ResponseWriter, r *http.Request, cookieName string) *cookieCredentialStore {
	return &cookieCredentialStore{r: r, w: w, name: cookieName}
}

func (s *cookieCredentialStore) Credential() (string, bool) {
	cookie, err := s.r.Cookie(s.name)
	if err != nil {
		return "", false
	}
	return cookie.Value, true
}

func (s *cookieCredentialStore) SetCredential(value string) {
	http.SetCookie(s.w, security.CreateCredentialCookie(s.r, s.name, value))
}
