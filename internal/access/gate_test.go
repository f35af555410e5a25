package access

import (
	"testing"

	"github.com/Kenford20/wedding-approuter/internal/models"
)

// memStore is an in-memory CredentialStore for tests.
type memStore struct {
	value string
	set   bool
}

func (s *memStore) Credential() (string, bool) { return s.value, s.set }

func (s *memStore) SetCredential(value string) {
	s.value = value
	s.set = true
}

func TestEvaluate(t *testing.T) {
	protected := &models.Website{
		SubPath:           "ab-cd",
		IsPasswordEnabled: true,
		Password:          "abc123",
	}
	open := &models.Website{
		SubPath:           "open-site",
		IsPasswordEnabled: false,
		Password:          "ignored",
	}

	tests := []struct {
		name  string
		site  *models.Website
		creds *memStore
		want  State
	}{
		{
			name:  "missing website",
			site:  nil,
			creds: &memStore{},
			want:  StateNotFound,
		},
		{
			name:  "missing website ignores credential",
			site:  nil,
			creds: &memStore{value: "abc123", set: true},
			want:  StateNotFound,
		},
		{
			name:  "password disabled grants without credential",
			site:  open,
			creds: &memStore{},
			want:  StateGranted,
		},
		{
			name:  "password disabled grants with wrong credential",
			site:  open,
			creds: &memStore{value: "nope", set: true},
			want:  StateGranted,
		},
		{
			name:  "matching credential grants",
			site:  protected,
			creds: &memStore{value: "abc123", set: true},
			want:  StateGranted,
		},
		{
			name:  "absent credential challenges",
			site:  protected,
			creds: &memStore{},
			want:  StateChallenge,
		},
		{
			name:  "wrong credential challenges",
			site:  protected,
			creds: &memStore{value: "abc124", set: true},
			want:  StateChallenge,
		},
		{
			name:  "empty stored credential does not match empty compare shortcut",
			site:  protected,
			creds: &memStore{value: "", set: true},
			want:  StateChallenge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.site, tt.creds); got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

// A visitor with no credential sees the challenge; submitting the password
// persists it without validation, and the next request is granted.
func TestChallengeThenGrantFlow(t *testing.T) {
	site := &models.Website{
		SubPath:           "ab-cd",
		IsPasswordEnabled: true,
		Password:          "abc123",
	}
	creds := &memStore{}

	if got := Evaluate(site, creds); got != StateChallenge {
		t.Fatalf("first request = %v, want %v", got, StateChallenge)
	}

	SubmitPassword(creds, "abc123")

	if !creds.set {
		t.Fatal("expected credential to be persisted on submission")
	}
	if got := Evaluate(site, creds); got != StateGranted {
		t.Fatalf("request after submission = %v, want %v", got, StateGranted)
	}
}

// A wrong submission is persisted as-is and the visitor simply sees the
// challenge again on the next request.
func TestWrongPasswordSilentlyRechallenges(t *testing.T) {
	site := &models.Website{
		SubPath:           "ab-cd",
		IsPasswordEnabled: true,
		Password:          "abc123",
	}
	creds := &memStore{}

	SubmitPassword(creds, "wrong-guess")

	if got, ok := creds.Credential(); !ok || got != "wrong-guess" {
		t.Fatalf("credential = %q (present=%v), want the submitted value stored", got, ok)
	}
	if got := Evaluate(site, creds); got != StateChallenge {
		t.Fatalf("request after wrong submission = %v, want %v", got, StateChallenge)
	}
}

func TestStateString(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{StateChallenge, "challenge"},
		{StateGranted, "granted"},
		{StateNotFound, "not found"},
		{StateUnavailable, "unavailable"},
		{State(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}
