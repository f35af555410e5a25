package service

import (
	"context"
	"fmt"
	"html"
	"log"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/Kenford20/wedding-approuter/internal/models"
)

// EmailService sends share links and RSVP reminders via Amazon SES. When no
// from-address is configured it runs disabled and every send is a logged
// no-op, so local development never needs AWS credentials.
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
	debug      bool
}

// NewEmailService creates a new email service
func NewEmailService(awsRegion, fromEmail, fromName, appBaseURL string, debug bool) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{
			appBaseURL: appBaseURL,
			enabled:    false,
			debug:      debug,
		}, nil
	}

	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := sesv2.NewFromConfig(cfg)
	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:     client,
		fromEmail:  fromEmail,
		fromName:   fromName,
		appBaseURL: appBaseURL,
		enabled:    true,
		debug:      debug,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// ShareLink builds the public URL for a website, optionally carrying a
// signed share token that pre-fills the visitor's credential on arrival.
func (s *EmailService) ShareLink(subPath, shareToken string) string {
	link := fmt.Sprintf("%s/w/%s", s.appBaseURL, url.PathEscape(subPath))
	if shareToken != "" {
		link += "?token=" + url.QueryEscape(shareToken)
	}
	return link
}

// SendShareEmail emails one recipient the site link. For password-protected
// sites the link carries the share token so the recipient never has to type
// the password.
func (s *EmailService) SendShareEmail(ctx context.Context, toEmail string, site *models.Website, shareToken string) error {
	link := s.ShareLink(site.SubPath, shareToken)
	subject := "You're invited: our wedding website"

	htmlBody := fmt.Sprintf(`
		<p>Hi,</p>
		<p>We've published our wedding website. Find all the details here:</p>
		<p><a href="%s">%s</a></p>
		<p>See you there!</p>
	`, html.EscapeString(link), html.EscapeString(link))
	textBody := fmt.Sprintf("We've published our wedding website. Find all the details here: %s", link)

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

// SendRSVPReminder emails one guest a reminder to respond for an event
func (s *EmailService) SendRSVPReminder(ctx context.Context, guest models.Guest, site *models.Website, event models.Event, shareToken string) error {
	if guest.Email == "" {
		return fmt.Errorf("guest %s has no email address", guest.ID)
	}

	link := s.ShareLink(site.SubPath, shareToken)
	subject := fmt.Sprintf("RSVP reminder: %s", event.Name)

	htmlBody := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We haven't heard back from you about <strong>%s</strong> yet.</p>
		<p>Please let us know whether you can make it: <a href="%s">%s</a></p>
	`, html.EscapeString(guest.FirstName), html.EscapeString(event.Name), html.EscapeString(link), html.EscapeString(link))
	textBody := fmt.Sprintf("Hi %s, we haven't heard back from you about %s yet. Please respond here: %s",
		guest.FirstName, event.Name, link)

	return s.send(ctx, guest.Email, subject, htmlBody, textBody)
}

func (s *EmailService) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	if !s.enabled {
		if s.debug {
			log.Printf("[DEBUG] Email disabled, skipping send to %s: %s", toEmail, subject)
		}
		return nil
	}

	from := s.fromEmail
	if s.fromName != "" {
		from = fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(from),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data: aws.String(subject),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data: aws.String(htmlBody),
					},
					Text: &types.Content{
						Data: aws.String(textBody),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", toEmail, err)
	}

	if s.debug {
		log.Printf("[DEBUG] Email sent to %s: %s", toEmail, subject)
	}
	return nil
}
