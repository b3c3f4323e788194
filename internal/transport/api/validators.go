package api

import (
	"reflect"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// decimalToFloat позволяет применять числовые теги валидации (gt, gte и т.д.)
// к полям типа decimal.Decimal.
func decimalToFloat(field reflect.Value) interface{} {
	value, ok := field.Interface().(decimal.Decimal)
	if !ok {
		return nil
	}
	return value.InexactFloat64()
}

func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterCustomTypeFunc(decimalToFloat, decimal.Decimal{})
}
