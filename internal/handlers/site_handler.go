package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/Kenford20/wedding-approuter/internal/access"
	"github.com/Kenford20/wedding-approuter/internal/security"
	"github.com/Kenford20/wedding-approuter/internal/service"
)

// SiteHandler serves the public, guest-facing website: the access gate,
// password submission, and the published content.
type SiteHandler struct {
	siteService        *service.SiteService
	shareTokens        *security.ShareTokenSigner
	templates          *template.Template
	passwordCookieName string
}

// NewSiteHandler creates a new public site handler
func NewSiteHandler(siteService *service.SiteService, shareTokens *security.ShareTokenSigner, templates *template.Template, passwordCookieName string) *SiteHandler {
	return &SiteHandler{
		siteService:        siteService,
		shareTokens:        shareTokens,
		templates:          templates,
		passwordCookieName: passwordCookieName,
	}
}

// ShowWebsite resolves the requested website and renders, depending on the
// gate's decision, the published content, the password challenge, or the
// generic not-available page. Not-found and fetch-failure render the same
// page on purpose.
func (h *SiteHandler) ShowWebsite(w http.ResponseWriter, r *http.Request) {
	subPath := r.PathValue("subPath")
	creds := NewCredentialStore(w, r, h.passwordCookieName)

	// A share-link token pre-fills the credential and redirects to the
	// clean URL; the gate then evaluates it like any stored credential.
	if token := r.URL.Query().Get("token"); token != "" && h.shareTokens != nil {
		if password, err := h.shareTokens.Parse(token, subPath); err == nil {
			creds.SetCredential(password)
		} else {
			log.Printf("rejected share token for %q: %v", subPath, err)
		}
		http.Redirect(w, r, "/w/"+subPath, http.StatusSeeOther)
		return
	}

	view := h.siteService.Resolve(subPath, creds)

	switch view.State {
	case access.StateGranted:
		data := WeddingViewData{
			Title:      view.Website.SubPath,
			Website:    view.Website,
			Events:     view.Data.Events,
			Households: view.Data.Households,
		}
		h.render(w, "wedding.tmpl", data)
	case access.StateChallenge:
		data := PasswordViewData{
			Title:   "Enter password",
			SubPath: subPath,
			Website: view.Website,
		}
		h.render(w, "password.tmpl", data)
	default:
		h.renderNotFound(w)
	}
}

// SubmitPassword persists a submitted password as the visitor's credential
// and redirects back to the site. The value is not validated here: a wrong
// password simply re-renders the challenge on the next request.
func (h *SiteHandler) SubmitPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	subPath := r.PathValue("subPath")
	creds := NewCredentialStore(w, r, h.passwordCookieName)
	h.siteService.SubmitPassword(creds, r.FormValue("password"))

	http.Redirect(w, r, "/w/"+subPath, http.StatusSeeOther)
}

// SignOut clears the visitor's credential cookie so the next request faces
// the gate again. Shared computers are the use case.
func (h *SiteHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, security.CreateDeleteCookie(r, h.passwordCookieName))
	http.Redirect(w, r, "/w/"+r.PathValue("subPath"), http.StatusSeeOther)
}

func (h *SiteHandler) render(w http.ResponseWriter, name string, data interface{}) {
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("Error rendering %s: %v", name, err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

func (h *SiteHandler) renderNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	if err := h.templates.ExecuteTemplate(w, "notfound.tmpl", NotFoundViewData{Title: "Not found"}); err != nil {
		log.Printf("Error rendering notfound template: %v", err)
		http.Error(w, ErrSiteNotAvailable, http.StatusNotFound)
	}
}
