package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
)

// CourseEmail is the data behind both the first CE email and its reminder.
type CourseEmail struct {
	To               string
	ProfessionalName string
	CourseName       string
	CourseHours      int
	Discount         string
	CouponCode       string
	RedeemURL        string
	PersonalMessage  string
}

const sendHTML = `<p>Hi {{.ProfessionalName}},</p>
<p>Your representative has sent you access to the following continuing education course:</p>
<p><strong>{{.CourseName}}</strong> ({{.CourseHours}} hrs) &middot; {{.Discount}}</p>
<p>Coupon code: <strong>{{.CouponCode}}</strong></p>
{{- if .PersonalMessage}}
<p><em>Personal message from your rep:</em><br/>{{.PersonalMessage}}</p>
{{- end}}
<p style="margin: 24px 0;"><a href="{{.RedeemURL}}" style="display: inline-block; background: #2455FF; color: #fff; text-decoration: none; padding: 14px 24px; border-radius: 8px; font-weight: bold;">Access Your Course</a></p>
<p style="color: #666; font-size: 12px;">If the button doesn't work, copy and paste this into your browser:<br/><a href="{{.RedeemURL}}">{{.RedeemURL}}</a></p>
<p>-- Pulse</p>
`

const sendText = `Hi {{.ProfessionalName}},

Your representative has sent you access to the following continuing education course:

Course: {{.CourseName}} ({{.CourseHours}} hrs)
Discount: {{.Discount}}
Coupon code: {{.CouponCode}}

Redeem at: {{.RedeemURL}}
{{if .PersonalMessage}}
Personal message from your rep:
{{.PersonalMessage}}
{{end}}
-- Pulse
`

const reminderHTML = `<p>Hi {{.ProfessionalName}},</p>
<p>This is a reminder that your representative sent you access to this continuing education course:</p>
<p><strong>{{.CourseName}}</strong> ({{.CourseHours}} hrs) &middot; {{.Discount}}</p>
{{- if .PersonalMessage}}
<p><em>Personal message from your rep:</em><br/>{{.PersonalMessage}}</p>
{{- end}}
<p style="margin: 24px 0;"><a href="{{.RedeemURL}}" style="display: inline-block; background: #2455FF; color: #fff; text-decoration: none; padding: 14px 24px; border-radius: 8px; font-weight: bold;">Access Your Free Course</a></p>
<p style="color: #666; font-size: 12px;">If the button doesn't work, copy and paste this into your browser:<br/><a href="{{.RedeemURL}}">{{.RedeemURL}}</a></p>
<p>-- Pulse</p>
`

const reminderText = `Hi {{.ProfessionalName}},

Reminder: your representative sent you access to this CE course:

{{.CourseName}} ({{.CourseHours}} hrs) - {{.Discount}}

Access your course: {{.RedeemURL}}

-- Pulse
`

var (
	sendHTMLTmpl     = htmltemplate.Must(htmltemplate.New("send.html").Parse(sendHTML))
	sendTextTmpl     = texttemplate.Must(texttemplate.New("send.txt").Parse(sendText))
	reminderHTMLTmpl = htmltemplate.Must(htmltemplate.New("reminder.html").Parse(reminderHTML))
	reminderTextTmpl = texttemplate.Must(texttemplate.New("reminder.txt").Parse(reminderText))
)

func render(html *htmltemplate.Template, text *texttemplate.Template, data CourseEmail) (string, string, error) {
	var h, t bytes.Buffer
	if err := html.Execute(&h, data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", html.Name(), err)
	}
	if err := text.Execute(&t, data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", text.Name(), err)
	}
	return h.String(), t.String(), nil
}

func (d CourseEmail) normalized() CourseEmail {
	d.PersonalMessage = strings.TrimSpace(d.PersonalMessage)
	return d
}

// SendMessage renders the email that accompanies a new CE send.
func SendMessage(d CourseEmail) (Message, error) {
	d = d.normalized()
	html, text, err := render(sendHTMLTmpl, sendTextTmpl, d)
	if err != nil {
		return Message{}, err
	}
	return Message{To: d.To, Subject: "Your CE course: " + d.CourseName, HTML: html, Text: text}, nil
}

// ReminderMessage renders the reminder for an existing CE send.
func ReminderMessage(d CourseEmail) (Message, error) {
	d = d.normalized()
	html, text, err := render(reminderHTMLTmpl, reminderTextTmpl, d)
	if err != nil {
		return Message{}, err
	}
	return Message{To: d.To, Subject: "Reminder: Your CE course - " + d.CourseName, HTML: html, Text: text}, nil
}

// VerifyEmail is the data behind the address verification email.
type VerifyEmail struct {
	To        string
	Name      string
	VerifyURL string
}

const verifyHTML = `<p>Hi {{if .Name}}{{.Name}}{{else}}there{{end}},</p>
<p>Confirm this address to see the CE courses sent to you on Pulse.</p>
<p style="margin: 24px 0;"><a href="{{.VerifyURL}}" style="display: inline-block; background: #2455FF; color: #fff; text-decoration: none; padding: 14px 24px; border-radius: 8px; font-weight: bold;">Verify Email</a></p>
<p style="color: #666; font-size: 12px;">The link expires in 48 hours. If you did not create a Pulse account, ignore this email.</p>
<p>-- Pulse</p>
`

const verifyText = `Hi {{if .Name}}{{.Name}}{{else}}there{{end}},

Confirm this address to see the CE courses sent to you on Pulse:

{{.VerifyURL}}

The link expires in 48 hours. If you did not create a Pulse account, ignore this email.

-- Pulse
`

var (
	verifyHTMLTmpl = htmltemplate.Must(htmltemplate.New("verify.html").Parse(verifyHTML))
	verifyTextTmpl = texttemplate.Must(texttemplate.New("verify.txt").Parse(verifyText))
)

// VerificationMessage renders the email that confirms a new account's address.
func VerificationMessage(d VerifyEmail) (Message, error) {
	var h, t bytes.Buffer
	if err := verifyHTMLTmpl.Execute(&h, d); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", verifyHTMLTmpl.Name(), err)
	}
	if err := verifyTextTmpl.Execute(&t, d); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", verifyTextTmpl.Name(), err)
	}
	return Message{To: d.To, Subject: "Verify your Pulse email", HTML: h.String(), Text: t.String()}, nil
}
