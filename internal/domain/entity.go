package domain

import (
	"time"
)

// Kind identifica uma coleção de entidades persistida em um slot próprio do backend
type Kind string

const (
	KindClients    Kind = "clients"
	KindProjects   Kind = "projects"
	KindInvoices   Kind = "invoices"
	KindBookings   Kind = "bookings"
	KindPricelists Kind = "pricelists"
	KindPromotions Kind = "promotions"
	KindTeam       Kind = "team"
)

// Kinds lista todas as coleções conhecidas, na ordem usada para estimar o uso de armazenamento
var Kinds = []Kind{
	KindClients,
	KindProjects,
	KindInvoices,
	KindBookings,
	KindPricelists,
	KindPromotions,
	KindTeam,
}

func (k Kind) String() string {
	return string(k)
}

// IsValid verifica se o tipo de entidade é conhecido
func (k Kind) IsValid() bool {
	for _, kind := range Kinds {
		if kind == k {
			return true
		}
	}
	return false
}

// Meta contém os campos atribuídos pelo store a toda entidade
type Meta struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Identity devolve um ponteiro para os campos de identidade da entidade
func (m *Meta) Identity() *Meta {
	return m
}

// Entity é o contrato comum de todas as entidades persistidas
type Entity interface {
	Identity() *Meta
	Kind() Kind
	Validate() error
}

// Shareable é implementado por entidades que podem ser expostas por link público
type Shareable interface {
	Entity
	// PublicRef aponta para o campo que guarda o identificador público (portalId/publicId)
	PublicRef() *string
	// Shared indica se a entidade deve ter um identificador público neste momento
	Shared() bool
}

// Keyed é implementado por entidades com chave única dentro da coleção
type Keyed interface {
	UniqueKey() string
}

// Normalizer normaliza campos antes da validação
type Normalizer interface {
	Normalize()
}

// Transitioner reage a mudanças de estado; na criação prev é nil
type Transitioner interface {
	Transition(prev Entity, now time.Time)
}

// ImageCarrier expõe os campos de imagem embutida (data URI em base64) da entidade
type ImageCarrier interface {
	ImageRefs() []*string
}

// Tabular é implementado por entidades exportáveis em CSV ou relatório
type Tabular interface {
	Header() []string
	Row() []string
}

// ImmutableFields são campos que um patch de update nunca sobrescreve
var ImmutableFields = []string{"id", "createdAt", "updatedAt", "portalId", "publicId"}
