package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendWorkspaceInvite(toEmail, workspaceName, inviteURL string) error
	SendResetToken(toEmail, resetURL string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendWorkspaceInvite(toEmail, workspaceName, inviteURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "You're invited to a workspace")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Workspace Invitation</h2>
			<p>You have been invited to collaborate on <strong>%s</strong>.</p>
			<p><a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Open Workspace</a></p>
			<p>Or copy this link:</p>
			<p>%s</p>
		</div>
	`, workspaceName, inviteURL, inviteURL)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}

func (s *emailService) SendResetToken(toEmail, resetURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Reset Your Password")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Password Reset Request</h2>
			<p>Use the link below to reset your password. It expires in <strong>15 minutes</strong>.</p>
			<p><a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Reset Password</a></p>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>If you didn't request this, please ignore this email.</p>
		</div>
	`, resetURL, resetURL)

	m.SetBody("text/html", body)

	return s.dialer.DialAndSend(m)
}
