// Package validate provides a validator/v10 singleton with english
// translations for option structs
package validate

import (
	"reflect"
	"strings"
	"sync"

	perr "munchmates/internal/platform/errors"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Svc holds a singleton validator and translator
type Svc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *Svc
)

// Init initializes the singleton validator with english translations and json tag names
func Init() *Svc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		vSvc = &Svc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *Svc {
	if vSvc == nil {
		return Init()
	}
	return vSvc
}

// Struct validates v and maps the first failure to a platform validation
// error carrying the offending field name
func Struct(v any) error {
	s := Get()
	err := s.Validator.Struct(v)
	if err == nil {
		return nil
	}
	if ferrs, ok := err.(validator.ValidationErrors); ok && len(ferrs) > 0 {
		fe := ferrs[0]
		return perr.WithField(
			perr.Validationf("%s", fe.Translate(s.Translator)),
			fe.Field(),
		)
	}
	return perr.Validationf("%v", err)
}
