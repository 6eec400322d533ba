package dto

import (
	helper "eventku_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs (field name ikut kontrak FE lama)
   ======================================================= */

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate menjalankan schema check murni; mengembalikan daftar pelanggaran.
// Field yang lolos sudah ternormalisasi (trim, email lowercase).
func (r *SignupRequest) Validate() []string {
	var violations []string
	if v, err := helper.ValidateName("name", r.Name); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.Name = v
	}
	if v, err := helper.ValidateEmail("email", r.Email); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.Email = v
	}
	if v, err := helper.ValidatePassword("password", r.Password); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.Password = v
	}
	return violations
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SigninRequest) Validate() []string {
	var violations []string
	if v, err := helper.ValidateEmail("email", r.Email); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.Email = v
	}
	if _, err := helper.ValidatePassword("password", r.Password); err != nil {
		violations = append(violations, err.Error())
	}
	return violations
}

// SuperAdminSigninRequest: FE lama mengirim superEmail/superPassword, bukan email/password.
type SuperAdminSigninRequest struct {
	SuperEmail    string `json:"superEmail"`
	SuperPassword string `json:"superPassword"`
}

func (r *SuperAdminSigninRequest) Validate() []string {
	var violations []string
	if v, err := helper.ValidateEmail("superEmail", r.SuperEmail); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.SuperEmail = v
	}
	if _, err := helper.ValidatePassword("superPassword", r.SuperPassword); err != nil {
		violations = append(violations, err.Error())
	}
	return violations
}
