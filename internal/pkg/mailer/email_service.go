package mailer

import (
	"fmt"

	"proofly-be/internal/pkg/apperrors"

	"gopkg.in/gomail.v2"
)

type TestimonialRequest struct {
	To           string
	ProjectName  string
	CategoryName string
	Link         string
	Message      string
}

type IEmailService interface {
	SendTestimonialRequest(req TestimonialRequest) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	configured  bool
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		configured:  host != "" && username != "",
	}
}

// SendTestimonialRequest emails an invitation with the public submission
// link. A missing SMTP setup is reported as a distinct configuration error
// so operators can tell it apart from a delivery failure.
func (s *emailService) SendTestimonialRequest(req TestimonialRequest) error {
	if !s.configured {
		return apperrors.Upstream("Email not configured. Please set SMTP_HOST and SMTP_EMAIL.", nil)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.senderEmail, s.senderName))
	m.SetHeader("To", req.To)
	m.SetHeader("Subject", fmt.Sprintf("Share your testimonial for %s", req.ProjectName))

	var messageBlock string
	if req.Message != "" {
		messageBlock = fmt.Sprintf(`<p style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin: 20px 0;">%s</p>`, req.Message)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Share Your Testimonial</h2>
			<p>Hi there,</p>
			<p>We'd love to hear about your experience with <strong>%s</strong>!</p>
			%s
			<p>Please take a moment to share your feedback:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 12px 24px; text-decoration: none; border-radius: 5px; display: inline-block;">Submit Testimonial</a>
			<p style="margin-top: 30px; font-size: 12px; color: #666;">Category: %s</p>
			<p style="font-size: 12px; color: #666;">If the button doesn't work, copy this link:<br>%s</p>
		</div>
	`, req.ProjectName, messageBlock, req.Link, req.CategoryName, req.Link)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return apperrors.Upstream("Failed to send email", err)
	}

	return nil
}
