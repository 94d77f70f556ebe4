package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"

	"github.com/altchain/landing-api/internal/lang"
)

// confirmationData feeds the localized waitlist confirmation templates.
type confirmationData struct {
	Name string
}

type confirmationContent struct {
	Subject  string
	Greeting string
	Text     string
	HTML     string
}

// One entry per supported language. Greeting is used when no name was
// submitted with the signup.
var confirmationContents = map[string]confirmationContent{
	"en": {
		Subject:  "You're on the AltChain waitlist",
		Greeting: "there",
		Text:     "Hi {{.Name}},\n\nThanks for joining the AltChain waitlist. We'll email you as soon as early access opens.\n\n— The AltChain team",
		HTML:     "<p>Hi {{.Name}},</p><p>Thanks for joining the <strong>AltChain</strong> waitlist. We'll email you as soon as early access opens.</p><p>— The AltChain team</p>",
	},
	"es": {
		Subject:  "Estás en la lista de espera de AltChain",
		Greeting: "hola",
		Text:     "Hola {{.Name}}:\n\nGracias por unirte a la lista de espera de AltChain. Te escribiremos en cuanto abramos el acceso anticipado.\n\n— El equipo de AltChain",
		HTML:     "<p>Hola {{.Name}}:</p><p>Gracias por unirte a la lista de espera de <strong>AltChain</strong>. Te escribiremos en cuanto abramos el acceso anticipado.</p><p>— El equipo de AltChain</p>",
	},
	"fr": {
		Subject:  "Vous êtes sur la liste d'attente AltChain",
		Greeting: "bonjour",
		Text:     "Bonjour {{.Name}},\n\nMerci d'avoir rejoint la liste d'attente AltChain. Nous vous écrirons dès l'ouverture de l'accès anticipé.\n\n— L'équipe AltChain",
		HTML:     "<p>Bonjour {{.Name}},</p><p>Merci d'avoir rejoint la liste d'attente <strong>AltChain</strong>. Nous vous écrirons dès l'ouverture de l'accès anticipé.</p><p>— L'équipe AltChain</p>",
	},
	"zh": {
		Subject:  "您已加入 AltChain 候补名单",
		Greeting: "您好",
		Text:     "{{.Name}}，您好：\n\n感谢您加入 AltChain 候补名单。抢先体验开放后我们会第一时间邮件通知您。\n\n— AltChain 团队",
		HTML:     "<p>{{.Name}}，您好：</p><p>感谢您加入 <strong>AltChain</strong> 候补名单。抢先体验开放后我们会第一时间邮件通知您。</p><p>— AltChain 团队</p>",
	},
	"ru": {
		Subject:  "Вы в списке ожидания AltChain",
		Greeting: "здравствуйте",
		Text:     "Здравствуйте, {{.Name}}!\n\nСпасибо, что присоединились к списку ожидания AltChain. Мы напишем вам, как только откроется ранний доступ.\n\n— Команда AltChain",
		HTML:     "<p>Здравствуйте, {{.Name}}!</p><p>Спасибо, что присоединились к списку ожидания <strong>AltChain</strong>. Мы напишем вам, как только откроется ранний доступ.</p><p>— Команда AltChain</p>",
	},
}

// RenderConfirmation produces the localized signup confirmation.
// langCode must already be resolved against the supported set.
func RenderConfirmation(langCode, name string) (subject, text, html string, err error) {
	content, ok := confirmationContents[langCode]
	if !ok {
		content = confirmationContents[lang.Default]
	}

	data := confirmationData{Name: name}
	if data.Name == "" {
		data.Name = content.Greeting
	}

	text, err = renderText("confirmation_text", content.Text, data)
	if err != nil {
		return "", "", "", err
	}

	html, err = renderHTML("confirmation_html", content.HTML, data)
	if err != nil {
		return "", "", "", err
	}

	return content.Subject, text, html, nil
}

type signupNoticeData struct {
	Email    string
	Name     string
	Language string
	Total    int64
}

const signupNoticeText = `New waitlist signup

Email:    {{.Email}}
Name:     {{if .Name}}{{.Name}}{{else}}(not provided){{end}}
Language: {{.Language}}
Total signups: {{.Total}}
`

// RenderSignupNotice produces the operator notification for a fresh
// waitlist signup. Always English.
func RenderSignupNotice(email, name, langCode string, total int64) (subject, text string, err error) {
	text, err = renderText("signup_notice", signupNoticeText, signupNoticeData{
		Email:    email,
		Name:     name,
		Language: langCode,
		Total:    total,
	})
	if err != nil {
		return "", "", err
	}

	return fmt.Sprintf("New AltChain waitlist signup: %s", email), text, nil
}

type contactRelayData struct {
	Name    string
	Email   string
	Message string
}

const contactRelayText = `New contact form message

From:  {{.Name}} <{{.Email}}>

{{.Message}}
`

const contactRelayHTML = `<h3>New contact form message</h3>
<p><strong>From:</strong> {{.Name}} &lt;{{.Email}}&gt;</p>
<p>{{.Message}}</p>
`

// RenderContactRelay produces the email that carries a contact form
// submission to the operator address. The HTML body goes through
// html/template so submitted text cannot inject markup.
func RenderContactRelay(name, email, message string) (subject, text, html string, err error) {
	data := contactRelayData{Name: name, Email: email, Message: message}

	text, err = renderText("contact_relay_text", contactRelayText, data)
	if err != nil {
		return "", "", "", err
	}

	html, err = renderHTML("contact_relay_html", contactRelayHTML, data)
	if err != nil {
		return "", "", "", err
	}

	return fmt.Sprintf("AltChain contact form: %s", name), text, html, nil
}

func renderText(name, tmpl string, data any) (string, error) {
	t, err := texttemplate.New(name).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", name, err)
	}
	return buf.String(), nil
}

func renderHTML(name, tmpl string, data any) (string, error) {
	t, err := htmltemplate.New(name).Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("parse %s template: %w", name, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", name, err)
	}
	return buf.String(), nil
}
