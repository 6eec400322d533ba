package dto

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	registrationModel "eventku_backend/internals/features/events/registration/model"
	helper "eventku_backend/internals/helpers"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type PlayerInput struct {
	Name       string `json:"name"`
	Gender     string `json:"gender"`
	GameID     string `json:"gameId"`
	TeamLeader bool   `json:"teamLeader"`
}

type RegisterRequest struct {
	Event         string        `json:"event"`
	Name          string        `json:"name"`
	Gender        string        `json:"gender"`
	Contact       string        `json:"contact"`
	Address       string        `json:"address"`
	Individual    bool          `json:"individual"`
	BankingName   string        `json:"bankingName"`
	TransactionID string        `json:"transactionId"`
	TeamName      string        `json:"teamName"`
	Players       []PlayerInput `json:"players"`
}

// Validate: gender hanya wajib untuk pendaftaran individual —
// untuk tim nilainya diabaikan dan disimpan NULL apa pun kirimannya.
func (r *RegisterRequest) Validate() []string {
	var violations []string
	if v, err := helper.ValidateSlug("event", r.Event); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.Event = v
	}
	if v, err := helper.ValidateName("name", r.Name); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.Name = v
	}
	if r.Individual {
		if err := helper.Validate().Var(r.Gender, "required,oneof=male female other"); err != nil {
			violations = append(violations, "gender: harus male/female/other")
		}
	}
	if v, err := helper.ValidateName("contact", r.Contact); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.Contact = v
	}
	if v, err := helper.ValidateName("address", r.Address); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.Address = v
	}
	if v, err := helper.ValidateName("bankingName", r.BankingName); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.BankingName = v
	}
	if v, err := helper.ValidateName("transactionId", r.TransactionID); err != nil {
		violations = append(violations, err.Error())
	} else {
		r.TransactionID = v
	}
	for _, p := range r.Players {
		if err := helper.Validate().Var(p.Name, "required"); err != nil {
			violations = append(violations, "players: nama pemain tidak boleh kosong")
			break
		}
	}
	return violations
}

// PlayersJSON menyerialisasi daftar pemain jadi satu kolom JSON.
func (r *RegisterRequest) PlayersJSON() (datatypes.JSON, error) {
	raw, err := json.Marshal(r.Players)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

type ApproveRequest struct {
	Approved *bool `json:"approved"`
}

/* =======================================================
   RESPONSE DTOs (bentuk ikut kontrak FE lama)
   ======================================================= */

type EventSummary struct {
	Event       string `json:"event"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Fee         string `json:"fee"`
}

type UserSummary struct {
	Email string `json:"email"`
}

type TeamSummary struct {
	TeamName string          `json:"teamName"`
	Players  json.RawMessage `json:"players"`
}

type RegistrationResponse struct {
	ID            uint         `json:"id"`
	CreatedAt     time.Time    `json:"createdAt"`
	Name          string       `json:"name"`
	Gender        *string      `json:"gender"`
	Contact       string       `json:"contact"`
	Address       string       `json:"address"`
	Individual    bool         `json:"individual"`
	TransactionID string       `json:"transactionId"`
	BankingName   string       `json:"bankingName"`
	Approved      bool         `json:"approved"`
	Event         EventSummary `json:"event"`
	User          UserSummary  `json:"user"`
	Team          *TeamSummary `json:"team"`
}

func FromModel(m *registrationModel.RegistrationModel) RegistrationResponse {
	resp := RegistrationResponse{
		ID:            m.ID,
		CreatedAt:     m.CreatedAt,
		Name:          m.Name,
		Gender:        m.Gender,
		Contact:       m.Contact,
		Address:       m.Address,
		Individual:    m.Individual,
		TransactionID: m.TransactionID,
		BankingName:   m.BankingName,
		Approved:      m.Approved,
		Event: EventSummary{
			Event:       m.Event.Event,
			Date:        m.Event.Date,
			Description: m.Event.Description,
			Fee:         m.Event.Fee,
		},
		User: UserSummary{Email: m.User.Email},
	}
	if m.Team != nil {
		resp.Team = &TeamSummary{
			TeamName: m.Team.TeamName,
			Players:  json.RawMessage(m.Team.Players),
		}
	}
	return resp
}

func FromModels(ms []registrationModel.RegistrationModel) []RegistrationResponse {
	out := make([]RegistrationResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromModel(&ms[i]))
	}
	return out
}
