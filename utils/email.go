package utils

import (
	"fmt"
	"log"
	"strconv"

	"travel_agency/config"

	"gopkg.in/gomail.v2"
)

// EnquiryMailData feeds the operator notification mail for a new enquiry.
type EnquiryMailData struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

func smtpDialer() (*gomail.Dialer, string, bool) {
	host := config.Config("SMTP_HOST")
	from := config.Config("SMTP_FROM")
	if host == "" || from == "" {
		return nil, "", false
	}
	port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))
	return gomail.NewDialer(host, port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD")), from, true
}

// SendEnquiryNotification mails the site operator about a new enquiry.
// Fire-and-forget: the contact form has already persisted the row, so a
// mail failure is logged and otherwise ignored.
func SendEnquiryNotification(to string, data EnquiryMailData) {
	go func() {
		d, from, ok := smtpDialer()
		if !ok {
			log.Println("SMTP not configured, skipping enquiry notification")
			return
		}

		body := fmt.Sprintf(
			"New enquiry received\n\nName: %s\nEmail: %s\nPhone: %s\n\n%s\n",
			data.Name, data.Email, data.Phone, data.Message)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "New enquiry from "+data.Name)
		m.SetBody("text/plain", body)

		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send enquiry notification: %v", err)
		}
	}()
}

// SendPasswordResetEmail mails a reset link (async).
func SendPasswordResetEmail(to, token string) {
	go func() {
		d, from, ok := smtpDialer()
		if !ok {
			log.Println("SMTP not configured, skipping password reset email")
			return
		}

		base := config.ConfigOr("SITE_URL", "http://localhost:3000")
		link := fmt.Sprintf("%s/admin/update-password?token=%s", base, token)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Reset your admin password")
		m.SetBody("text/plain", "Use the link below to set a new password. It expires in one hour.\n\n"+link+"\n")

		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send password reset email: %v", err)
		}
	}()
}
