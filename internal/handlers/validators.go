package handlers

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators wires custom binding rules into gin's validator engine.
// Monetary amounts bind as decimal.Decimal; the custom type func exposes them
// to the validator as float64 so `required` and `nonneg` apply naturally
// (a zero amount fails `required`, matching the mandatory-amount rule).
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("nonneg", func(fl validator.FieldLevel) bool {
		f, ok := fl.Field().Interface().(float64)
		return ok && f >= 0
	})
}
