// Package validation registers the request-payload validators shared by the
// admin forms.
package validation

import (
	"errors"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// Indian mobile numbers are ten digits starting 6 through 9.
	mobilePattern = regexp.MustCompile(`^[6-9][0-9]{9}$`)
	// Aadhar numbers are twelve digits.
	aadharPattern = regexp.MustCompile(`^[0-9]{12}$`)
)

// Register installs the custom tags on gin's binding validator. Call once at
// startup before the router handles requests.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}
	if err := v.RegisterValidation("indianmobile", validMobile); err != nil {
		return err
	}
	return v.RegisterValidation("aadhar", validAadhar)
}

func validMobile(fl validator.FieldLevel) bool {
	return mobilePattern.MatchString(fl.Field().String())
}

func validAadhar(fl validator.FieldLevel) bool {
	return aadharPattern.MatchString(fl.Field().String())
}
