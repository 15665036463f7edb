package service

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/hydration/internal/tracker"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("screen", func(fl validator.FieldLevel) bool {
			_, err := tracker.ParseScreen(fl.Field().String())
			return err == nil
		})
	})
}

func validateRequest(req any) error {
	InitValidator()
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = errors.New("validation error: ")
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return errors.New("validation unexpected error: " + err.Error())
}
