package services

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"taskboard/model"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

var validCategories = map[string]bool{
	model.CategoryUrgent:    true,
	model.CategoryImportant: true,
	model.CategorySmall:     true,
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDeadline(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("taskcategory", func(fl validator.FieldLevel) bool {
		return validCategories[fl.Field().String()]
	})
	v.RegisterValidation("taskstatus", func(fl validator.FieldLevel) bool {
		_, ok := model.ParseStatus(fl.Field().String())
		return ok
	})
	v.RegisterValidation("boardstatus", func(fl validator.FieldLevel) bool {
		_, ok := model.StatusFromBoard(fl.Field().String())
		return ok
	})
	return v
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// messages maps "Field.tag" or "tag" to the message reported for that failure.
type messages map[string]string

// checkStruct runs the validator over v. Missing required fields are reported
// before any format or enum failure.
func checkStruct(v interface{}, msgs messages, fallback string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Internal(err)
	}

	pick := verrs[0]
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			pick = fe
			break
		}
	}
	if m, ok := msgs[pick.Field()+"."+pick.Tag()]; ok {
		return Validation(m)
	}
	if m, ok := msgs[pick.Tag()]; ok {
		return Validation(m)
	}
	return Validation(fallback)
}
