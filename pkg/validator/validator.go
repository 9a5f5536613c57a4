package validator

import (
	"log"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	entityValidator *validator.Validate
	entityOnce      sync.Once
)

// RegisterGinValidator configures gin's binding engine to report field names
// from uri/form/json tags and registers the custom tags.
func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		configure(v)
	}
}

// Struct validates an entity with the `validate` struct tags.
func Struct(s any) error {
	entityOnce.Do(func() {
		entityValidator = validator.New(validator.WithRequiredStructEnabled())
		configure(entityValidator)
	})
	return entityValidator.Struct(s)
}

func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(tagName)
	err := v.RegisterValidation("dbid", dbIDValidator)
	if err != nil {
		log.Fatal("register dbid validator failed")
	}
}

func tagName(fld reflect.StructField) string {
	for _, key := range []string{"uri", "form", "json"} {
		name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return fld.Name
}

// dbIDValidator accepts positive 64-bit identifiers, given either as an
// integer field or as its decimal string.
var dbIDValidator validator.Func = func(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() > 0
	case reflect.String:
		id, err := strconv.ParseInt(field.String(), 10, 64)
		return err == nil && id > 0
	default:
		return false
	}
}
