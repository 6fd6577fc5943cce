package notifications

import (
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	log "github.com/sirupsen/logrus"
)

type Sender struct {
	client *sendgrid.Client
}

func NewSender(client *sendgrid.Client) *Sender {
	return &Sender{
		client: client,
	}
}

func (s *Sender) SendFeedbackThanks(name, email string) error {
	from := mail.NewEmail("Ascent Leadership Academy", "no-reply@ascentleadership.example.com")
	subject := "Thank you for your feedback!"
	to := mail.NewEmail(name, email)
	plainTextContent := "Thank you for sharing your feedback with Ascent Leadership Academy."
	htmlContent := "<strong>Thank you for your feedback!</strong>"
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	response, err := s.client.Send(message)
	if err != nil {
		return err
	}

	if response.StatusCode != 202 {
		log.Errorf("failure sending feedback email with sendgrid: %v", response.Body)
	}

	return nil
}
