package dto

import (
	"strconv"

	helper "eventku_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateEventWithAdminRequest: super admin membuat event + admin-nya sekaligus.
type CreateEventWithAdminRequest struct {
	Name          string   `json:"name"` // nama admin
	AdminEmail    string   `json:"adminEmail"`
	AdminPassword string   `json:"adminPassword"`
	Event         string   `json:"event"`
	Date          string   `json:"date"`
	Description   string   `json:"description"`
	Fee           *float64 `json:"fee"`
}

// Validate: semua field wajib; slug di-lowercase sebelum dipakai.
func (r *CreateEventWithAdminRequest) Validate() []string {
	var violations []string
	if v, err := helper.ValidateName("name", r.Name); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.Name = v
	}
	if v, err := helper.ValidateEmail("adminEmail", r.AdminEmail); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.AdminEmail = v
	}
	if _, err := helper.ValidatePassword("adminPassword", r.AdminPassword); err != nil {
		violations = append(violations, err.Error())
	}
	if v, err := helper.ValidateSlug("event", r.Event); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.Event = v
	}
	if v, err := helper.ValidateName("date", r.Date); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.Date = v
	}
	if v, err := helper.ValidateName("description", r.Description); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.Description = v
	}
	if r.Fee == nil {
		violations = append(violations, "fee: tidak boleh kosong")
	} else if _, err := helper.ValidateFee("fee", *r.Fee); err != nil {
		violations = append(violations, err.Error())
	}
	return violations
}

// FeeString: fee disimpan sebagai string desimal di DB (skema lama).
func (r *CreateEventWithAdminRequest) FeeString() string {
	return strconv.FormatFloat(*r.Fee, 'f', -1, 64)
}

// UpdateEventRequest: partial update — pointer supaya bisa bedakan absen vs kosong.
// EventID hanya boleh dipakai super admin; admin biasa SELALU pakai claim token.
type UpdateEventRequest struct {
	Event       *string  `json:"event,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
	Fee         *float64 `json:"fee,omitempty"`
	EventID     *int     `json:"eventId,omitempty"`
}

// Validate memeriksa hanya field yang dikirim.
func (r *UpdateEventRequest) Validate() []string {
	var violations []string
	if r.Event != nil {
		if v, err := helper.ValidateSlug("event", *r.Event); err != nil {
			violations = append(violations, err.Error())
		} else {
			r.Event = &v
		}
	}
	if r.Date != nil {
		if v, err := helper.ValidateName("date", *r.Date); err != nil {
			violations = append(violations, err.Error())
		} else {
			r.Date = &v
		}
	}
	if r.Description != nil {
		if v, err := helper.ValidateName("description", *r.Description); err != nil {
			violations = append(violations, err.Error())
		} else {
			r.Description = &v
		}
	}
	if r.Fee != nil {
		if _, err := helper.ValidateFee("fee", *r.Fee); err != nil {
			violations = append(violations, err.Error())
		}
	}
	return violations
}

// Updates membangun map kolom→nilai untuk GORM; field absen tidak ikut.
func (r *UpdateEventRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Event != nil {
		updates["event"] = *r.Event
	}
	if r.Date != nil {
		updates["date"] = *r.Date
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Fee != nil {
		updates["fee"] = strconv.FormatFloat(*r.Fee, 'f', -1, 64)
	}
	return updates
}
