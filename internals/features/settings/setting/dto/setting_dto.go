package dto

// Body toggle gate: wajib boolean eksplisit, bukan truthy bebas.

type SetRegistrationOpenRequest struct {
	RegistrationOpen *bool `json:"registrationOpen"`
}

type SetGameRegistrationOpenRequest struct {
	GameRegistrationOpen *bool `json:"gameRegistrationOpen"`
}
