package utils

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func emailConfigFromEnv() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// SendDonationConfirmation emails the donor a thank-you note with the 80G
// certificate attached. The support inbox is BCC'd so the office keeps a
// copy of every receipt that goes out.
func SendDonationConfirmation(to, donorName string, amount float64, transactionID, certificatePath string) error {
	config := emailConfigFromEnv()

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	if support := os.Getenv("SUPPORT_EMAIL"); support != "" {
		m.SetHeader("Bcc", support)
	}
	m.SetHeader("Subject", fmt.Sprintf("Thank you for your donation of ₹%.0f", amount))

	body := fmt.Sprintf(`
		<h2>Dear %s,</h2>
		<p>Thank you for your generous contribution towards Gau Seva.</p>
		<p><b>Amount:</b> ₹%.2f<br/>
		<b>Transaction ID:</b> %s</p>
		<p>Your 80G donation receipt cum certificate is attached. Keep it safe
		for your income tax filing.</p>
		<p>With gratitude,<br/>Dhyan Foundation Guwahati</p>
	`, donorName, amount, transactionID)
	m.SetBody("text/html", body)

	if certificatePath != "" {
		if _, err := os.Stat(certificatePath); err == nil {
			m.Attach(certificatePath, gomail.Rename("80G_Certificate.pdf"))
		}
	}

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}

	return nil
}
