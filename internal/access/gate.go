// Package access decides, per incoming request, whether a website shows its
// published content or the password challenge. The protocol is request
// scoped: submitting a password only persists it as the visitor's
// credential, and the comparison happens on the next request. A wrong
// password therefore re-renders the challenge on reload instead of
// producing an explicit error; that behavior is load-bearing, don't "fix" it.
package access

import "github.com/Kenford20/wedding-approuter/internal/models"

// State is the outcome of gating one content request.
type State int

const (
	// StateChallenge renders the password form.
	StateChallenge State = iota
	// StateGranted renders the published content.
	StateGranted
	// StateNotFound means the sub-path resolves to no website.
	StateNotFound
	// StateUnavailable means the content fetch failed after the gate
	// granted access. Rendered identically to StateNotFound so internal
	// failures never leak to the public site.
	StateUnavailable
)

func (s State) String() string {
	switch s {
	case StateChallenge:
		return "challenge"
	case StateGranted:
		return "granted"
	case StateNotFound:
		return "not found"
	case StateUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// CredentialStore is the client-held credential for one visitor, scoped by
// the request-handling boundary (in practice a cookie pair). The gate reads
// it before deciding and writes it on challenge submission; expiry is the
// store's concern, not the gate's.
type CredentialStore interface {
	// Credential returns the stored value and whether one is present.
	Credential() (string, bool)
	// SetCredential persists the submitted value for future requests.
	SetCredential(value string)
}

// Evaluate runs the gate for one request. A nil website is not found; a
// site without password protection is granted unconditionally; otherwise
// the stored credential must equal the site password exactly.
func Evaluate(site *models.Website, creds CredentialStore) State {
	if site == nil {
		return StateNotFound
	}
	if !site.IsPasswordEnabled {
		return StateGranted
	}
	if credential, ok := creds.Credential(); ok && credential == site.Password {
		return StateGranted
	}
	return StateChallenge
}

// SubmitPassword persists a submitted password as the visitor's credential.
// No comparison happens here: the gate re-evaluates on the next request.
func SubmitPassword(creds CredentialStore, value string) {
	creds.SetCredential(value)
}
