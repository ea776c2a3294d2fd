package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var validate = validator.New()

func init() {
	registerABN()
	registerBSB()
	registerCRN()

	// report fields by their json name, not the Go field name.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

type ErrorValidateResponse struct {
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message,omitempty"`
}

func (e ErrorValidateResponse) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateStruct(toValidate interface{}) error {
	var errs *multierror.Error
	if err := validate.Struct(toValidate); err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			errs = multierror.Append(errs, ErrorValidateResponse{
				Message: err.Error(),
			})
			return errs.ErrorOrNil()
		}

		var valErrs validator.ValidationErrors
		if errors.As(err, &valErrs) {
			for _, valErr := range valErrs {
				errs = multierror.Append(errs, ErrorValidateResponse{
					Field:   valErr.Field(),
					Message: strings.TrimSpace(fmt.Sprintf("%s %s", valErr.Tag(), valErr.Param())),
				})
			}
		}
	}

	return errs.ErrorOrNil()
}

// abnWeights are the ATO checksum weights for the 11 digit ABN.
var abnWeights = [11]int{10, 1, 3, 5, 7, 9, 11, 13, 15, 17, 19}

func registerABN() {
	validate.RegisterValidation("abn", func(fl validator.FieldLevel) bool {
		return ValidABN(fl.Field().String())
	})
}

// ValidABN runs the modulus 89 check: subtract 1 from the first digit,
// then the weighted digit sum must divide evenly by 89.
func ValidABN(abn string) bool {
	if len(abn) != 11 {
		return false
	}

	sum := 0
	for i, r := range abn {
		d, err := strconv.Atoi(string(r))
		if err != nil {
			return false
		}
		if i == 0 {
			d--
			if d < 0 {
				return false
			}
		}
		sum += d * abnWeights[i]
	}

	return sum%89 == 0
}

var bsbPattern = regexp.MustCompile(`^\d{3}-?\d{3}$`)

func registerBSB() {
	validate.RegisterValidation("bsb", func(fl validator.FieldLevel) bool {
		return bsbPattern.MatchString(fl.Field().String())
	})
}

var crnPattern = regexp.MustCompile(`^\d{2,20}$`)

func registerCRN() {
	validate.RegisterValidation("crn", func(fl validator.FieldLevel) bool {
		return crnPattern.MatchString(fl.Field().String())
	})
}
