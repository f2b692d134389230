package mailer

import (
	"bytes"
	"embed"
	htmltemplate "html/template"
	"strconv"
	texttemplate "text/template"
	"time"
)

const verificationSubject = "Mystery Message | Verification Code"

//go:embed templates/*
var templateFS embed.FS

var (
	verificationText = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/verification.txt"))
	verificationHTML = htmltemplate.Must(htmltemplate.ParseFS(templateFS, "templates/verification.html"))
)

type renderedEmail struct {
	Subject string
	Text    string
	HTML    string
}

type templateData struct {
	Username  string
	Code      string
	ExpiresIn string
}

func render(email VerificationEmail) (renderedEmail, error) {
	data := templateData{
		Username:  email.Username,
		Code:      email.Code,
		ExpiresIn: humanDuration(email.ExpiresIn),
	}

	var text, html bytes.Buffer
	if err := verificationText.Execute(&text, data); err != nil {
		return renderedEmail{}, err
	}
	if err := verificationHTML.Execute(&html, data); err != nil {
		return renderedEmail{}, err
	}

	return renderedEmail{
		Subject: verificationSubject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

// humanDuration renders whole minutes as "10 minutes" and anything else
// with time.Duration formatting.
func humanDuration(d time.Duration) string {
	if d <= 0 {
		return "a few minutes"
	}
	if d%time.Minute != 0 {
		return d.String()
	}
	minutes := int(d / time.Minute)
	if minutes == 1 {
		return "1 minute"
	}
	return strconv.Itoa(minutes) + " minutes"
}
