package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance (dipakai juga oleh DTO di feature lain)
var validate = validator.New()

// Validate mengekspos instance validator bersama.
func Validate() *validator.Validate { return validate }

const PasswordMinLen = 6

// FieldError menjelaskan constraint mana yang gagal pada satu field.
// Murni data, tidak pernah panic lintas boundary.
type FieldError struct {
	Field      string
	Violations []string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + strings.Join(e.Violations, ", ")
}

/* ==========================
   Schema check murni
   (hasil selalu sama untuk input sama)
========================== */

// ValidateName: string wajib, di-trim, tidak boleh kosong.
func ValidateName(field, value string) (string, *FieldError) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", &FieldError{Field: field, Violations: []string{"tidak boleh kosong"}}
	}
	return v, nil
}

// ValidateEmail: format email RFC, dinormalisasi ke lowercase.
func ValidateEmail(field, value string) (string, *FieldError) {
	v := strings.TrimSpace(strings.ToLower(value))
	if v == "" {
		return "", &FieldError{Field: field, Violations: []string{"tidak boleh kosong"}}
	}
	if err := validate.Var(v, "email"); err != nil {
		return "", &FieldError{Field: field, Violations: []string{"format email tidak valid"}}
	}
	return v, nil
}

// ValidatePassword: minimal 6 karakter.
func ValidatePassword(field, value string) (string, *FieldError) {
	if err := validate.Var(value, "required,min=6"); err != nil {
		return "", &FieldError{Field: field, Violations: []string{"password minimal 6 karakter"}}
	}
	return value, nil
}

// ValidateFee: angka tidak boleh negatif.
func ValidateFee(field string, value float64) (float64, *FieldError) {
	if value < 0 {
		return 0, &FieldError{Field: field, Violations: []string{"tidak boleh negatif"}}
	}
	return value, nil
}

// ValidateSlug: slug event = string wajib yang di-lowercase dulu
// supaya lookup event case-insensitive.
func ValidateSlug(field, value string) (string, *FieldError) {
	return ValidateName(field, strings.ToLower(value))
}
