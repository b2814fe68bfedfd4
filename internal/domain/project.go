package domain

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

type ProjectStatus string

const (
	ProjectStatusUpcoming   ProjectStatus = "upcoming"
	ProjectStatusInProgress ProjectStatus = "in-progress"
	ProjectStatusCompleted  ProjectStatus = "completed"
)

// Image é uma imagem de galeria, normalmente um data URI em base64
type Image struct {
	Data    string `json:"data"`
	Caption string `json:"caption,omitempty"`
}

func (i Image) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Data, validation.Required),
	)
}

type Project struct {
	Meta
	ClientID      string          `json:"clientId,omitempty"`
	ClientName    string          `json:"clientName"`
	Type          string          `json:"type"`
	Status        ProjectStatus   `json:"status"`
	Date          string          `json:"date,omitempty"`
	Budget        decimal.Decimal `json:"budget"`
	Paid          decimal.Decimal `json:"paid"`
	PaymentStatus PaymentStatus   `json:"paymentStatus,omitempty"`
	Team          []string        `json:"team"`
	Services      []string        `json:"services"`
	Gallery       []Image         `json:"gallery"`
	IsPublic      bool            `json:"isPublic"`
	PublicID      string          `json:"publicId,omitempty"`
	CompletedAt   *time.Time      `json:"completedAt,omitempty"`
}

func (p *Project) Kind() Kind { return KindProjects }

// Normalize aplica o status padrão e remove duplicados de equipe e serviços
func (p *Project) Normalize() {
	if p.Status == "" {
		p.Status = ProjectStatusUpcoming
	}
	p.Team = uniqueStrings(p.Team)
	p.Services = uniqueStrings(p.Services)
	p.Gallery = orEmpty(p.Gallery)
}

func (p *Project) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.ClientName, validation.Required),
		validation.Field(&p.Type, validation.Required),
		validation.Field(&p.Status, validation.In(ProjectStatusUpcoming, ProjectStatusInProgress, ProjectStatusCompleted)),
		validation.Field(&p.Date, dateOnly),
		validation.Field(&p.Budget, nonNegative),
		validation.Field(&p.Paid, nonNegative),
		validation.Field(&p.Gallery),
	)
}

// Transition marca completedAt apenas na transição para completed
func (p *Project) Transition(prev Entity, now time.Time) {
	old, _ := prev.(*Project)

	if p.Status != ProjectStatusCompleted {
		p.CompletedAt = nil
		return
	}

	if old == nil || old.Status != ProjectStatusCompleted {
		completedAt := now
		p.CompletedAt = &completedAt
		return
	}

	p.CompletedAt = old.CompletedAt
}

func (p *Project) PublicRef() *string { return &p.PublicID }

func (p *Project) Shared() bool { return p.IsPublic }

func (p *Project) ImageRefs() []*string {
	refs := make([]*string, 0, len(p.Gallery))
	for i := range p.Gallery {
		refs = append(refs, &p.Gallery[i].Data)
	}
	return refs
}

func (p *Project) Header() []string {
	return []string{"id", "clientName", "type", "status", "date", "budget", "paid", "paymentStatus", "team", "services"}
}

func (p *Project) Row() []string {
	return []string{
		p.ID,
		p.ClientName,
		p.Type,
		string(p.Status),
		p.Date,
		p.Budget.String(),
		p.Paid.String(),
		string(p.PaymentStatus),
		strings.Join(p.Team, "; "),
		strings.Join(p.Services, "; "),
	}
}
