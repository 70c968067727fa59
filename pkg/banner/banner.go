// Package banner renders validation reports as HTML notification banners,
// the way the billing front-end surfaces form errors above a form.
package banner

import (
	"fmt"
	"html"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-billingforms/pkg/formrules"
)

// Level is the notification severity.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

const defaultTemplate = `<div class="{{ prefix }} {{ prefix }}--{{ level }}" role="{{ role }}">
<p class="{{ prefix }}__title">{{ title }}</p>
{% if messages %}<ul class="{{ prefix }}__messages">
{% for message in messages %}<li>{{ message }}</li>
{% endfor %}</ul>
{% endif %}</div>`

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Option configures a Renderer.
type Option func(*config)

type config struct {
	template     string
	classPrefix  string
	successTitle string
	errorTitle   string
}

// WithTemplate overrides the pongo2 template. The template receives prefix,
// level, role, title and messages.
func WithTemplate(tpl string) Option {
	return func(cfg *config) {
		if strings.TrimSpace(tpl) != "" {
			cfg.template = tpl
		}
	}
}

// WithClassPrefix overrides the BEM block class (default "notification").
func WithClassPrefix(prefix string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			cfg.classPrefix = trimmed
		}
	}
}

// WithTitles overrides the banner titles for valid and invalid reports.
func WithTitles(success, failure string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(success); trimmed != "" {
			cfg.successTitle = trimmed
		}
		if trimmed := strings.TrimSpace(failure); trimmed != "" {
			cfg.errorTitle = trimmed
		}
	}
}

// Renderer turns reports into banner markup. It is safe for concurrent use.
type Renderer struct {
	tpl *pongo2.Template
	cfg config
}

// New compiles the banner template.
func New(opts ...Option) (*Renderer, error) {
	cfg := config{
		template:     defaultTemplate,
		classPrefix:  "notification",
		successTitle: "Enregistrement effectué",
		errorTitle:   "Le formulaire contient des erreurs",
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	tpl, err := pongo2.FromString(cfg.template)
	if err != nil {
		return nil, fmt.Errorf("banner: compile template: %w", err)
	}
	return &Renderer{tpl: tpl, cfg: cfg}, nil
}

// Render produces the banner for report.
func (r *Renderer) Render(report formrules.Report) (string, error) {
	if r == nil || r.tpl == nil {
		return "", fmt.Errorf("banner: renderer is not initialised")
	}

	level, role, title := LevelSuccess, "status", r.cfg.successTitle
	var messages []string
	if !report.Valid {
		level, role, title = LevelError, "alert", r.cfg.errorTitle
		messages = plainText(report.Messages())
	}

	out, err := r.tpl.Execute(pongo2.Context{
		"prefix":   r.cfg.classPrefix,
		"level":    string(level),
		"role":     role,
		"title":    title,
		"messages": messages,
	})
	if err != nil {
		return "", fmt.Errorf("banner: render: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Render is a convenience wrapper building a Renderer with opts.
func Render(report formrules.Report, opts ...Option) (string, error) {
	renderer, err := New(opts...)
	if err != nil {
		return "", err
	}
	return renderer.Render(report)
}

// plainText strips markup from messages; the template escapes the result.
func plainText(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	policy := textSanitizer()
	out := make([]string, 0, len(messages))
	for _, message := range messages {
		cleaned := strings.TrimSpace(html.UnescapeString(policy.Sanitize(message)))
		if cleaned == "" {
			continue
		}
		out = append(out, cleaned)
	}
	return out
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
