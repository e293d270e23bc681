package handler

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"cylindertrack/internal/domain"
)

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules on gin's validator.
// Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("mismatch_type", func(fl validator.FieldLevel) bool {
			return domain.AllowedMismatchTypes[domain.MismatchType(fl.Field().String())]
		})
		_ = v.RegisterValidation("mismatch_reason", func(fl validator.FieldLevel) bool {
			return domain.AllowedMismatchReasons[domain.MismatchReason(fl.Field().String())]
		})
	})
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// fieldPath drops the top-level struct name: "DeliveryInput.reconciliation_reasons[0].reason"
// becomes "reconciliation_reasons[0].reason".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
