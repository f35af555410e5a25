package handlers

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strings"

	"github.com/Kenford20/wedding-approuter/internal/models"
	"github.com/Kenford20/wedding-approuter/internal/repository"
	"github.com/Kenford20/wedding-approuter/internal/security"
	"github.com/Kenford20/wedding-approuter/internal/service"
)

// GuestListHandler serves the host-facing guest list dashboard: the
// filtered/aggregated view, guest and event edits, CSV export, and the
// share/reminder email actions.
type GuestListHandler struct {
	guestLists   *service.GuestListService
	emailService *service.EmailService
	shareTokens  *security.ShareTokenSigner
	websiteRepo  *repository.WebsiteRepository
	templates    *template.Template
}

// NewGuestListHandler creates a new guest list handler
func NewGuestListHandler(guestLists *service.GuestListService, emailService *service.EmailService, shareTokens *security.ShareTokenSigner, websiteRepo *repository.WebsiteRepository, templates *template.Template) *GuestListHandler {
	return &GuestListHandler{
		guestLists:   guestLists,
		emailService: emailService,
		shareTokens:  shareTokens,
		websiteRepo:  websiteRepo,
		templates:    templates,
	}
}

// website loads the dashboard's website or writes an error response and
// returns nil.
func (h *GuestListHandler) website(w http.ResponseWriter, websiteID string) *models.Website {
	site, err := h.websiteRepo.GetByID(websiteID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to load website", err)
		return nil
	}
	if site == nil {
		http.Error(w, "Website not found", http.StatusNotFound)
		return nil
	}
	return site
}

// ShowGuests renders the guest list view for the query and event scope in
// the URL. The view is recomputed from scratch on every request, so edits
// made elsewhere are always reflected.
func (h *GuestListHandler) ShowGuests(w http.ResponseWriter, r *http.Request) {
	site := h.website(w, r.PathValue("websiteID"))
	if site == nil {
		return
	}

	view, err := h.guestLists.View(site.ID, r.URL.Query().Get("q"), r.URL.Query().Get("event"))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to build guest list view", err)
		return
	}

	data := GuestsViewData{
		Title:   "Guest list",
		Website: site,
		View:    view,
		Error:   r.URL.Query().Get("error"),
		Success: r.URL.Query().Get("success"),
	}
	if err := h.templates.ExecuteTemplate(w, "guests.tmpl", data); err != nil {
		log.Printf("Error rendering guests template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// DownloadGuests streams the current guest list view as CSV, honoring the
// same query and scope parameters as the HTML view.
func (h *GuestListHandler) DownloadGuests(w http.ResponseWriter, r *http.Request) {
	site := h.website(w, r.PathValue("websiteID"))
	if site == nil {
		return
	}

	view, err := h.guestLists.View(site.ID, r.URL.Query().Get("q"), r.URL.Query().Get("event"))
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to build guest list view", err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="guest-list.csv"`)
	if err := h.guestLists.ExportCSV(w, view); err != nil {
		log.Printf("Error writing guest list csv: %v", err)
	}
}

// CreateHousehold adds a household with one initial guest
func (h *GuestListHandler) CreateHousehold(w http.ResponseWriter, r *http.Request) {
	site := h.website(w, r.PathValue("websiteID"))
	if site == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	firstName := strings.TrimSpace(r.FormValue("first_name"))
	if firstName == "" {
		h.redirectBack(w, r, site.ID, "error=Guest+name+is+required")
		return
	}

	guest := models.Guest{
		FirstName: firstName,
		LastName:  strings.TrimSpace(r.FormValue("last_name")),
		Email:     strings.TrimSpace(r.FormValue("email")),
	}
	householdName := strings.TrimSpace(r.FormValue("household_name"))
	if householdName == "" {
		householdName = guest.LastName
	}

	if _, err := h.guestLists.AddHousehold(site.ID, householdName, []models.Guest{guest}); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to create household", err)
		return
	}

	h.redirectBack(w, r, site.ID, "success=Guest+added")
}

// AddGuest adds a guest to an existing household
func (h *GuestListHandler) AddGuest(w http.ResponseWriter, r *http.Request) {
	site := h.website(w, r.PathValue("websiteID"))
	if site == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	firstName := strings.TrimSpace(r.FormValue("first_name"))
	if firstName == "" {
		h.redirectBack(w, r, site.ID, "error=Guest+name+is+required")
		return
	}

	_, err := h.guestLists.AddGuest(
		r.PathValue("householdID"),
		firstName,
		strings.TrimSpace(r.FormValue("last_name")),
		strings.TrimSpace(r.FormValue("email")),
	)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to add guest", err)
		return
	}

	h.redirectBack(w, r, site.ID, "success=Guest+added")
}

// DeleteHousehold removes a household with all its guests and invitations
func (h *GuestListHandler) DeleteHousehold(w http.ResponseWriter, r *http.Request) {
	site := h.website(w, r.PathValue("websiteID"))
	if site == nil {
		return
	}

	if err := h.guestLists.RemoveHousehold(r.PathValue("householdID")); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to delete household", err)
		return
	}

	h.redirectBack(w, r, site.ID, "success=Household+removed")
}

// SetRSVP records a guest's response for an event on the host's behalf
func (h *GuestListHandler) SetRSVP(w http.ResponseWriter, r *http.Request) {
	site := h.website(w, r.PathValue("websiteID"))
	if site == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	eventID := r.FormValue("event_id")
	if eventID == "" {
		h.redirectBack(w, r, site.ID, "error=Event+is+required")
		return
	}

	status := models.ParseRSVPStatus(r.FormValue("rsvp"))
	if err := h.guestLists.SetRSVP(r.PathValue("guestID"), eventID, status); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to set rsvp", err)
		return
	}

	h.redirectBack(w, r, site.ID, "success=RSVP+updated")
}

// Uninvite withdraws a guest's invitation for an event
func (h *GuestListHandler) Uninvite(w http.ResponseWriter, r *http.Request) {
	site := h.website(w, r.PathValue("websiteID"))
	if site == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	eventID := r.FormValue("event_id")
	if eventID == "" {
		h.redirectBack(w, r, site.ID, "error=Event+is+required")
		return
	}

	if err := h.guestLists.Uninvite(r.PathValue("guestID"), eventID); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to uninvite guest", err)
		return
	}

	h.redirectBack(w, r, site.ID, "success=Invitation+withdrawn")
}

// UpdateSitePassword changes the website's password protection settings.
// Already-issued share links keep working only while their embedded password
// still matches.
func (h *GuestListHandler) UpdateSitePassword(w http.ResponseWriter, r *http.Request) {
	site := h.website(w, r.PathValue("websiteID"))
	if site == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	enabled := r.FormValue("enabled") == "on"
	password := r.FormValue("password")
	if enabled && password == "" {
		h.redirectBack(w, r, site.ID, "error=Password+is+required")
		return
	}
	if !enabled {
		password = ""
	}

	if err := h.websiteRepo.UpdatePassword(site.ID, enabled, password); err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to update site password", err)
		return
	}

	h.redirectBack(w, r, site.ID, "success=Site+password+updated")
}

// ShowEditEvent renders the event edit form, prefilled from the event
func (h *GuestListHandler) ShowEditEvent(w http.ResponseWriter, r *http.Request) {
	site := h.website(w, r.PathValue("websiteID"))
	if site == nil {
		return
	}

	form, err := h.guestLists.EditEventForm(r.PathValue("eventID"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to prefill event form", err)
		return
	}

	data := EventFormViewData{
		Title:   "Edit event",
		Website: site,
		Form:    *form,
	}
	if err := h.templates.ExecuteTemplate(w, "event_form.tmpl", data); err != nil {
		log.Printf("Error rendering event form template: %v", err)
		http.Error(w, ErrInternalServerError, http.StatusInternalServerError)
	}
}

// UpdateEvent applies a submitted event edit form
func (h *GuestListHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	site := h.website(w, r.PathValue("websiteID"))
	if site == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	form := service.EventForm{
		EventName:   strings.TrimSpace(r.FormValue("event_name")),
		Date:        strings.TrimSpace(r.FormValue("date")),
		StartTime:   strings.TrimSpace(r.FormValue("start_time")),
		EndTime:     strings.TrimSpace(r.FormValue("end_time")),
		Venue:       strings.TrimSpace(r.FormValue("venue")),
		Attire:      strings.TrimSpace(r.FormValue("attire")),
		Description: strings.TrimSpace(r.FormValue("description")),
		EventID:     r.PathValue("eventID"),
	}
	if form.EventName == "" {
		h.redirectBack(w, r, site.ID, "error=Event+name+is+required")
		return
	}

	if err := h.guestLists.ApplyEventForm(form); err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to update event", err)
		return
	}

	h.redirectBack(w, r, site.ID, "success=Event+updated")
}

// ShareWebsite emails the site link to a comma-separated list of addresses.
// Password-protected sites get a signed token in the link so recipients
// skip the challenge.
func (h *GuestListHandler) ShareWebsite(w http.ResponseWriter, r *http.Request) {
	site := h.website(w, r.PathValue("websiteID"))
	if site == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	if !h.emailService.IsEnabled() {
		h.redirectBack(w, r, site.ID, "error=Email+is+not+configured")
		return
	}

	token, err := h.shareToken(site)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to sign share token", err)
		return
	}

	sent := 0
	for _, raw := range strings.Split(r.FormValue("emails"), ",") {
		email := strings.TrimSpace(raw)
		if email == "" {
			continue
		}
		if err := h.emailService.SendShareEmail(r.Context(), email, site, token); err != nil {
			log.Printf("Failed to send share email to %s: %v", email, err)
			continue
		}
		sent++
	}

	h.redirectBack(w, r, site.ID, fmt.Sprintf("success=Shared+with+%d+recipients", sent))
}

// SendReminders emails every no-response guest for the chosen event
func (h *GuestListHandler) SendReminders(w http.ResponseWriter, r *http.Request) {
	site := h.website(w, r.PathValue("websiteID"))
	if site == nil {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, ErrInvalidFormData, http.StatusBadRequest)
		return
	}

	eventID := r.FormValue("event_id")
	if eventID == "" {
		h.redirectBack(w, r, site.ID, "error=Event+is+required")
		return
	}

	if !h.emailService.IsEnabled() {
		h.redirectBack(w, r, site.ID, "error=Email+is+not+configured")
		return
	}

	event, err := h.guestLists.EditEventForm(eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			h.redirectBack(w, r, site.ID, "error=Unknown+event")
			return
		}
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to load event", err)
		return
	}

	recipients, err := h.guestLists.ReminderRecipients(site.ID, eventID)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to collect reminder recipients", err)
		return
	}

	token, err := h.shareToken(site)
	if err != nil {
		respondWithError(w, http.StatusInternalServerError, ErrInternalServerError, "failed to sign share token", err)
		return
	}

	reminderEvent := models.Event{ID: event.EventID, Name: event.EventName}
	sent := 0
	for _, guest := range recipients {
		if err := h.emailService.SendRSVPReminder(r.Context(), guest, site, reminderEvent, token); err != nil {
			log.Printf("Failed to send reminder to %s: %v", guest.Email, err)
			continue
		}
		sent++
	}

	h.redirectBack(w, r, site.ID, fmt.Sprintf("success=Reminded+%d+guests", sent))
}

// shareToken signs a token for password-protected sites; open sites share a
// plain link.
func (h *GuestListHandler) shareToken(site *models.Website) (string, error) {
	if !site.IsPasswordEnabled || h.shareTokens == nil {
		return "", nil
	}
	return h.shareTokens.Sign(site.SubPath, site.Password)
}

func (h *GuestListHandler) redirectBack(w http.ResponseWriter, r *http.Request, websiteID, message string) {
	http.Redirect(w, r, "/dashboard/"+websiteID+"/guests?"+message, http.StatusSeeOther)
}
