package forms

import (
	"reflect"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultValidator backs gin's binding with the validator engine plus
// the platform's custom field rules.
type DefaultValidator struct {
	once     sync.Once
	validate *validator.Validate
}

var _ binding.StructValidator = &DefaultValidator{}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// customRules maps the binding tags the forms in this package use
// beyond the built-ins.
var customRules = map[string]validator.Func{
	// objectid: a 24-character hex document id, e.g. the userId filter
	// on the video listing
	"objectid": func(fl validator.FieldLevel) bool {
		_, err := bson.ObjectIDFromHex(fl.Field().String())
		return err == nil
	},
	// username: letters, digits and underscores
	"username": func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	},
}

// ValidateStruct checks the binding tags of a struct. Non-struct
// values pass through untouched.
func (v *DefaultValidator) ValidateStruct(obj interface{}) error {
	if kindOf(obj) != reflect.Struct {
		return nil
	}
	v.lazyinit()
	return v.validate.Struct(obj)
}

// Engine returns the underlying validator engine, initializing it on
// first use.
func (v *DefaultValidator) Engine() interface{} {
	v.lazyinit()
	return v.validate
}

func (v *DefaultValidator) lazyinit() {
	v.once.Do(func() {
		v.validate = validator.New()
		v.validate.SetTagName("binding")

		for tag, fn := range customRules {
			if err := v.validate.RegisterValidation(tag, fn); err != nil {
				panic(err)
			}
		}
	})
}

// kindOf unwraps pointers to report the kind of the referenced value.
func kindOf(data interface{}) reflect.Kind {
	value := reflect.ValueOf(data)
	if value.Kind() == reflect.Ptr {
		return value.Elem().Kind()
	}
	return value.Kind()
}
