package domain

import (
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type TeamMember struct {
	Meta
	Name          string   `json:"name"`
	Role          string   `json:"role"`
	Phone         string   `json:"phone,omitempty"`
	Email         string   `json:"email,omitempty"`
	Specialties   []string `json:"specialties"`
	CompletedJobs int      `json:"completedJobs"`
	Rating        float64  `json:"rating"`
	Active        bool     `json:"active"`
}

func (t *TeamMember) Kind() Kind { return KindTeam }

func (t *TeamMember) Normalize() {
	t.Specialties = uniqueStrings(t.Specialties)
}

func (t *TeamMember) Validate() error {
	return validation.ValidateStruct(t,
		validation.Field(&t.Name, validation.Required, validation.Length(1, 120)),
		validation.Field(&t.Role, validation.Required),
		validation.Field(&t.Email, is.EmailFormat),
		validation.Field(&t.CompletedJobs, validation.Min(0)),
		validation.Field(&t.Rating, validation.Min(0.0), validation.Max(5.0)),
	)
}

func (t *TeamMember) Header() []string {
	return []string{"id", "name", "role", "specialties", "completedJobs", "rating", "active"}
}

func (t *TeamMember) Row() []string {
	active := "no"
	if t.Active {
		active = "yes"
	}
	return []string{
		t.ID,
		t.Name,
		t.Role,
		strings.Join(t.Specialties, "; "),
		itoa(t.CompletedJobs),
		strconv.FormatFloat(t.Rating, 'f', 2, 64),
		active,
	}
}
