package dto

// Mail kinds carried on the mail topic.
const (
	MailKindInvite        = "workspace_invite"
	MailKindPasswordReset = "password_reset"
)

// MailMessage is the payload published for fire-and-forget delivery.
type MailMessage struct {
	Kind          string `json:"kind"`
	To            string `json:"to"`
	WorkspaceName string `json:"workspace_name,omitempty"`
	URL           string `json:"url"`
}
