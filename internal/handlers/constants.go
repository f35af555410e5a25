package handlers

const (
	ErrInvalidFormData     = "Invalid form data"
	ErrInternalServerError = "Internal server error"
	ErrSiteNotAvailable    = "This website isn't available"
)
