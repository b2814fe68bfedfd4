package domain

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

// Pricelist é um item do catálogo de preços, com imagens e link público opcional
type Pricelist struct {
	Meta
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Category    string          `json:"category,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Images      []Image         `json:"images"`
	IsPublic    bool            `json:"isPublic"`
	PublicID    string          `json:"publicId,omitempty"`
}

func (p *Pricelist) Kind() Kind { return KindPricelists }

func (p *Pricelist) Normalize() {
	p.Images = orEmpty(p.Images)
}

func (p *Pricelist) Validate() error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 160)),
		validation.Field(&p.Price, nonNegative),
		validation.Field(&p.Images),
	)
}

func (p *Pricelist) PublicRef() *string { return &p.PublicID }

func (p *Pricelist) Shared() bool { return p.IsPublic }

func (p *Pricelist) ImageRefs() []*string {
	refs := make([]*string, 0, len(p.Images))
	for i := range p.Images {
		refs = append(refs, &p.Images[i].Data)
	}
	return refs
}

func (p *Pricelist) Header() []string {
	return []string{"id", "title", "category", "price", "images", "isPublic"}
}

func (p *Pricelist) Row() []string {
	isPublic := "no"
	if p.IsPublic {
		isPublic = "yes"
	}
	return []string{p.ID, p.Title, p.Category, p.Price.String(), itoa(len(p.Images)), isPublic}
}

// GalleryView é a visão pública de um projeto ou item de pricelist
type GalleryView struct {
	Feature     string          `json:"feature"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price,omitempty"`
	Images      []Image         `json:"images"`
}

func (p *Pricelist) GalleryView() GalleryView {
	return GalleryView{
		Feature:     "pricelist",
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Images:      p.Images,
	}
}

func (p *Project) GalleryView() GalleryView {
	return GalleryView{
		Feature: "gallery",
		Title:   p.Type,
		Images:  p.Gallery,
	}
}
