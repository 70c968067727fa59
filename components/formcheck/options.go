package formcheck

import (
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/goliatone/go-billingforms/pkg/formrules"
	"github.com/goliatone/go-billingforms/pkg/formvalidation"
)

const (
	defaultValidatePath = "/api/forms/validate"
	defaultReorderPath  = "/api/forms/reorder"
	defaultKindsPath    = "/api/forms/kinds"
	defaultKindParam    = "kind"
	defaultMaxBodyBytes = 1 << 20
)

type GuardFunc func(r *http.Request) error

// RulesFunc returns the business-rule validator for a form kind.
type RulesFunc func(kind formvalidation.FormKind) *formrules.Validator

type Options struct {
	ValidatePath string
	ReorderPath  string
	KindsPath    string
	KindParam    string
	MaxBodyBytes int64
	Guard        GuardFunc

	Service *formvalidation.Service
	Rules   RulesFunc
	Logger  *logrus.Entry
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		ValidatePath: defaultValidatePath,
		ReorderPath:  defaultReorderPath,
		KindsPath:    defaultKindsPath,
		KindParam:    defaultKindParam,
		MaxBodyBytes: defaultMaxBodyBytes,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.ValidatePath == "" {
		opts.ValidatePath = defaultValidatePath
	}
	if opts.ReorderPath == "" {
		opts.ReorderPath = defaultReorderPath
	}
	if opts.KindsPath == "" {
		opts.KindsPath = defaultKindsPath
	}
	if opts.KindParam == "" {
		opts.KindParam = defaultKindParam
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}
	if opts.Service == nil {
		opts.Service = formvalidation.New()
	}
	if opts.Rules == nil {
		opts.Rules = formrules.ForKind
	}
	if opts.Logger == nil {
		opts.Logger = discardLogger()
	}
	return opts
}

func WithValidatePath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ValidatePath = path
	}
}

func WithReorderPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.ReorderPath = path
	}
}

func WithKindsPath(path string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.KindsPath = path
	}
}

func WithMaxBodyBytes(limit int64) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.MaxBodyBytes = limit
	}
}

func WithGuard(guard GuardFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Guard = guard
	}
}

func WithService(svc *formvalidation.Service) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Service = svc
	}
}

func WithRules(fn RulesFunc) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Rules = fn
	}
}

func WithLogger(entry *logrus.Entry) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = entry
	}
}

func discardLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}
