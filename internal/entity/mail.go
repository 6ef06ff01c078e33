package entity

// Mail is an outgoing e-mail.
type Mail struct {
	Type        string   `json:"type"`
	Subject     string   `json:"subject"`
	Message     string   `json:"message"`
	Recipients  []string `json:"recipients"`
	ContentType string   `json:"contentType,omitempty"`
}

const MailTypeEmail = "email"
