// Package validation owns the validator shared by the HTTP layer and the CLI.
//
// Besides the built-in go-playground rules it registers:
//
//	notblank   - string contains something other than whitespace
//	letters    - letters (with diacritics) and spaces only
//	lettersnum - letters (with diacritics), digits and spaces only
//	imageuri   - data:image/...;base64 URI
//	photo      - imageuri or an http(s) URL
//	httpurl    - http(s) URL
//	date       - a value util.ParseLocalDate accepts
package validation

import (
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"leafcare/internal/util"

	"github.com/go-playground/validator/v10"
)

var (
	lettersPattern    = regexp.MustCompile(`^[\p{L}\p{M} ]+$`)
	lettersNumPattern = regexp.MustCompile(`^[\p{L}\p{M}\p{N} ]+$`)
	imageURIPattern   = regexp.MustCompile(`^data:image/(png|jpe?g|gif|webp|bmp|svg\+xml);base64,[A-Za-z0-9+/]+={0,2}$`)
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the process-wide validator with the leafcare rules registered.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = newValidator()
	})

	return instance
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	return Validator().Struct(s)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON or query parameter names so messages match what the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "query"} {
			name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}

		return fld.Name
	})

	rules := map[string]validator.Func{
		"notblank":   stringRule(func(s string) bool { return strings.TrimSpace(s) != "" }),
		"letters":    stringRule(lettersPattern.MatchString),
		"lettersnum": stringRule(lettersNumPattern.MatchString),
		"imageuri":   stringRule(IsImageDataURI),
		"httpurl":    stringRule(IsHTTPURL),
		"photo":      stringRule(func(s string) bool { return IsImageDataURI(s) || IsHTTPURL(s) }),
		"date": stringRule(func(s string) bool {
			_, err := util.ParseLocalDate(s)
			return err == nil
		}),
	}
	for tag, fn := range rules {
		// Registration only fails on an empty tag or nil func.
		_ = v.RegisterValidation(tag, fn)
	}

	return v
}

func stringRule(check func(string) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		field := fl.Field()
		if field.Kind() != reflect.String {
			return false
		}

		return check(field.String())
	}
}

// IsImageDataURI reports whether s is a base64 image data URI.
func IsImageDataURI(s string) bool {
	return imageURIPattern.MatchString(s)
}

// IsHTTPURL reports whether s is an absolute http or https URL with a host.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
