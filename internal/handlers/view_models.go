package handlers

import (
	"github.com/Kenford20/wedding-approuter/internal/models"
	"github.com/Kenford20/wedding-approuter/internal/service"
)

type WeddingViewData struct {
	Title      string
	Website    *models.Website
	Events     []models.Event
	Households []models.Household
}

type PasswordViewData struct {
	Title   string
	SubPath string
	Website *models.Website
}

type NotFoundViewData struct {
	Title string
}

type GuestsViewData struct {
	Title   string
	Website *models.Website
	View    *service.GuestListView
	Error   string
	Success string
}

type EventFormViewData struct {
	Title   string
	Website *models.Website
	Form    service.EventForm
	Error   string
}
