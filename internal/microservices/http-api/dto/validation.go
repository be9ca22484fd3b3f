package dto

import (
	"errors"
	"reflect"
	"strings"

	"creatorhub/internal/microservices/http-api/models"
	"creatorhub/internal/social"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the enum tags used in binding annotations to gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}

	// Report fields by their wire name so messages match what clients sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, key := range []string{"json", "form"} {
			name, _, _ := strings.Cut(fld.Tag.Get(key), ",")
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
		"role": func(fl validator.FieldLevel) bool {
			_, err := models.ParseRole(fl.Field().String())
			return err == nil
		},
		"requirement_status": func(fl validator.FieldLevel) bool {
			_, err := models.ParseRequirementStatus(fl.Field().String())
			return err == nil
		},
		"campaign_decision": func(fl validator.FieldLevel) bool {
			_, err := models.ParseCampaignDecision(fl.Field().String())
			return err == nil
		},
		"platform": func(fl validator.FieldLevel) bool {
			_, err := social.ParsePlatform(fl.Field().String())
			return err == nil
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
