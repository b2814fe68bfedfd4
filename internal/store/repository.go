package store

import (
	"bytes"
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
	"github.com/vfg2006/mua-studio-api/pkg/log"
	"github.com/vfg2006/mua-studio-api/pkg/utils"
)

// maxIDAttempts limita as tentativas de gerar um ID que ainda não exista na coleção
const maxIDAttempts = 5

// Patch é um update parcial: chaves em camelCase, como no formato persistido.
// A mesclagem é rasa; listas e objetos aninhados são substituídos por inteiro.
type Patch map[string]any

// Record restringe Repository a ponteiros de entidade do domínio
type Record[T any] interface {
	*T
	domain.Entity
}

// Repository é o CRUD de uma coleção. Cada operação lê o slot inteiro, aplica a mudança
// e regrava o slot; nada é mantido em memória entre chamadas.
type Repository[T any, PT Record[T]] struct {
	store *Store
	kind  domain.Kind
}

type (
	ClientRepository    = Repository[domain.Client, *domain.Client]
	ProjectRepository   = Repository[domain.Project, *domain.Project]
	InvoiceRepository   = Repository[domain.Invoice, *domain.Invoice]
	BookingRepository   = Repository[domain.Booking, *domain.Booking]
	PricelistRepository = Repository[domain.Pricelist, *domain.Pricelist]
	PromotionRepository = Repository[domain.Promotion, *domain.Promotion]
	TeamRepository      = Repository[domain.TeamMember, *domain.TeamMember]
)

// NewRepository cria o repositório da coleção de T sobre o store
func NewRepository[T any, PT Record[T]](s *Store) *Repository[T, PT] {
	var zero T
	return &Repository[T, PT]{store: s, kind: PT(&zero).Kind()}
}

func (s *Store) Clients() *ClientRepository {
	return NewRepository[domain.Client](s)
}

func (s *Store) Projects() *ProjectRepository {
	return NewRepository[domain.Project](s)
}

func (s *Store) Invoices() *InvoiceRepository {
	return NewRepository[domain.Invoice](s)
}

func (s *Store) Bookings() *BookingRepository {
	return NewRepository[domain.Booking](s)
}

func (s *Store) Pricelists() *PricelistRepository {
	return NewRepository[domain.Pricelist](s)
}

func (s *Store) Promotions() *PromotionRepository {
	return NewRepository[domain.Promotion](s)
}

func (s *Store) Team() *TeamRepository {
	return NewRepository[domain.TeamMember](s)
}

// Kind devolve a coleção do repositório
func (r *Repository[T, PT]) Kind() domain.Kind {
	return r.kind
}

// List devolve todas as entidades na ordem de inserção
func (r *Repository[T, PT]) List() ([]T, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items, _, err := r.load()
	return items, err
}

// Get busca uma entidade pelo ID
func (r *Repository[T, PT]) Get(id string) (T, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var zero T

	items, _, err := r.load()
	if err != nil {
		return zero, err
	}

	idx := indexOf[T, PT](items, id)
	if idx < 0 {
		return zero, notFound(r.kind, id)
	}

	return items[idx], nil
}

// Exists informa se a coleção já foi gravada alguma vez no backend
func (r *Repository[T, PT]) Exists() (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	_, exists, err := r.store.backend.Get(slotKey(r.kind))
	if err != nil {
		return false, backendFailed(r.kind, err)
	}
	return exists, nil
}

// FindByPublicID busca uma entidade compartilhada pelo identificador público.
// Entidades que deixaram de ser compartilhadas não são encontradas.
func (r *Repository[T, PT]) FindByPublicID(publicID string) (T, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var zero T
	if publicID == "" {
		return zero, notFound(r.kind, publicID)
	}

	items, _, err := r.load()
	if err != nil {
		return zero, err
	}

	for i := range items {
		shareable, ok := any(PT(&items[i])).(domain.Shareable)
		if !ok {
			return zero, notFound(r.kind, publicID)
		}
		if *shareable.PublicRef() == publicID && shareable.Shared() {
			return items[i], nil
		}
	}

	return zero, notFound(r.kind, publicID)
}

// Add valida e grava uma nova entidade. ID, createdAt e o identificador público
// são sempre atribuídos pelo store; valores enviados pelo chamador são ignorados.
func (r *Repository[T, PT]) Add(record T) (T, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var zero T
	entity := PT(&record)
	now := r.store.now()

	if normalizer, ok := any(entity).(domain.Normalizer); ok {
		normalizer.Normalize()
	}
	// sem estado anterior: a criação conta como transição para o status inicial
	if transitioner, ok := any(entity).(domain.Transitioner); ok {
		transitioner.Transition(nil, now)
	}
	if err := entity.Validate(); err != nil {
		return zero, validationFailed(r.kind, "", err)
	}

	items, _, err := r.load()
	if err != nil {
		return zero, err
	}

	id, err := r.newID(items)
	if err != nil {
		return zero, err
	}

	meta := entity.Identity()
	meta.ID = id
	meta.CreatedAt = now
	meta.UpdatedAt = nil

	if shareable, ok := any(entity).(domain.Shareable); ok {
		*shareable.PublicRef() = ""
	}
	if err := r.issuePublicID(entity, items); err != nil {
		return zero, err
	}
	if err := r.checkUnique(entity, items); err != nil {
		return zero, err
	}

	if err := r.save(append(items, record)); err != nil {
		return zero, err
	}

	log.L.WithFields(log.Fields{
		"kind": r.kind.String(),
		"id":   id,
	}).Debug("Entidade criada")

	return record, nil
}

// Update aplica um patch parcial à entidade. Campos imutáveis presentes no patch são ignorados.
func (r *Repository[T, PT]) Update(id string, patch Patch) (T, error) {
	return r.UpdateWith(id, patch, nil)
}

// UpdateWith aplica o patch e depois fn sobre o resultado, antes da validação e na mesma gravação
func (r *Repository[T, PT]) UpdateWith(id string, patch Patch, fn func(record *T) error) (T, error) {
	return r.modify(id, func(prev T) (T, error) {
		next, err := mergePatch(prev, patch)
		if err != nil {
			return next, validationFailed(r.kind, id, err)
		}
		if fn != nil {
			if err := fn(&next); err != nil {
				return next, err
			}
		}
		return next, nil
	})
}

// Mutate aplica fn a uma cópia da entidade dentro da mesma operação atômica,
// com as mesmas regras de Update. Um erro de fn é devolvido sem gravar nada.
func (r *Repository[T, PT]) Mutate(id string, fn func(record *T) error) (T, error) {
	return r.modify(id, func(prev T) (T, error) {
		next, err := mergePatch(prev, nil)
		if err != nil {
			return next, backendFailed(r.kind, err)
		}
		if err := fn(&next); err != nil {
			return next, err
		}
		return next, nil
	})
}

func (r *Repository[T, PT]) modify(id string, change func(prev T) (T, error)) (T, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var zero T

	items, _, err := r.load()
	if err != nil {
		return zero, err
	}

	idx := indexOf[T, PT](items, id)
	if idx < 0 {
		return zero, notFound(r.kind, id)
	}

	prev := items[idx]
	next, err := change(prev)
	if err != nil {
		return zero, err
	}

	entity := PT(&next)
	prevEntity := PT(&prev)

	*entity.Identity() = *prevEntity.Identity()
	if shareable, ok := any(entity).(domain.Shareable); ok {
		*shareable.PublicRef() = *any(prevEntity).(domain.Shareable).PublicRef()
	}

	now := r.store.now()

	if normalizer, ok := any(entity).(domain.Normalizer); ok {
		normalizer.Normalize()
	}
	if transitioner, ok := any(entity).(domain.Transitioner); ok {
		transitioner.Transition(prevEntity, now)
	}
	if err := entity.Validate(); err != nil {
		return zero, validationFailed(r.kind, id, err)
	}
	if err := r.issuePublicID(entity, items); err != nil {
		return zero, err
	}
	if err := r.checkUnique(entity, items); err != nil {
		return zero, err
	}

	entity.Identity().UpdatedAt = &now
	items[idx] = next

	if err := r.save(items); err != nil {
		return zero, err
	}

	return next, nil
}

// Remove apaga a entidade. Remover um ID inexistente não é erro e não grava nada.
func (r *Repository[T, PT]) Remove(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items, _, err := r.load()
	if err != nil {
		return err
	}

	idx := indexOf[T, PT](items, id)
	if idx < 0 {
		return nil
	}

	items = slices.Delete(items, idx, idx+1)
	if err := r.save(items); err != nil {
		return err
	}

	log.L.WithFields(log.Fields{
		"kind": r.kind.String(),
		"id":   id,
	}).Debug("Entidade removida")

	return nil
}

// load deve ser chamado com o mutex do store travado. Um slot ilegível é removido
// e resulta em coleção vazia, sem reaproveitar registros parcialmente decodificados.
func (r *Repository[T, PT]) load() ([]T, bool, error) {
	payload, exists, err := r.store.backend.Get(slotKey(r.kind))
	if err != nil {
		return nil, false, backendFailed(r.kind, err)
	}
	if !exists || len(bytes.TrimSpace(payload)) == 0 {
		return []T{}, exists, nil
	}

	var items []T
	if err := utils.JSON.Unmarshal(payload, &items); err != nil {
		r.store.resetCorrupt(r.kind, err)
		return []T{}, false, nil
	}
	if items == nil {
		items = []T{}
	}

	return items, exists, nil
}

func (r *Repository[T, PT]) save(items []T) error {
	payload, err := utils.JSON.Marshal(items)
	if err != nil {
		return backendFailed(r.kind, err)
	}

	return r.store.write(r.kind, payload)
}

func (r *Repository[T, PT]) newID(items []T) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := r.store.issuer.NewID()
		if err != nil {
			return "", newStoreError(ErrGenerateID, apiErrors.ErrInternalServer, r.kind, "", err.Error())
		}
		if indexOf[T, PT](items, id) < 0 {
			return id, nil
		}
	}

	return "", newStoreError(ErrGenerateID, apiErrors.ErrInternalServer, r.kind, "", "id collision")
}

// issuePublicID atribui o identificador público na primeira vez que a entidade é
// compartilhada. Um identificador já emitido nunca é trocado.
func (r *Repository[T, PT]) issuePublicID(entity PT, items []T) error {
	shareable, ok := any(entity).(domain.Shareable)
	if !ok || !shareable.Shared() || *shareable.PublicRef() != "" {
		return nil
	}

	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		publicID, err := r.store.issuer.NewPublicID()
		if err != nil {
			return newStoreError(ErrGenerateID, apiErrors.ErrInternalServer, r.kind, entity.Identity().ID, err.Error())
		}
		if !publicIDTaken[T, PT](items, publicID) {
			*shareable.PublicRef() = publicID
			return nil
		}
	}

	return newStoreError(ErrGenerateID, apiErrors.ErrInternalServer, r.kind, entity.Identity().ID, "public id collision")
}

func (r *Repository[T, PT]) checkUnique(entity PT, items []T) error {
	keyed, ok := any(entity).(domain.Keyed)
	if !ok {
		return nil
	}

	key := keyed.UniqueKey()
	if key == "" {
		return nil
	}

	id := entity.Identity().ID
	for i := range items {
		other := PT(&items[i])
		if other.Identity().ID == id {
			continue
		}
		if any(other).(domain.Keyed).UniqueKey() == key {
			return newStoreError(ErrDuplicate, apiErrors.ErrConflict, r.kind, id, key)
		}
	}

	return nil
}

func indexOf[T any, PT Record[T]](items []T, id string) int {
	if id == "" {
		return -1
	}
	for i := range items {
		if PT(&items[i]).Identity().ID == id {
			return i
		}
	}
	return -1
}

func publicIDTaken[T any, PT Record[T]](items []T, publicID string) bool {
	for i := range items {
		if shareable, ok := any(PT(&items[i])).(domain.Shareable); ok && *shareable.PublicRef() == publicID {
			return true
		}
	}
	return false
}

// mergePatch sobrepõe as chaves do patch à forma serializada da entidade atual
func mergePatch[T any](current T, patch Patch) (T, error) {
	var merged T

	base, err := utils.JSON.Marshal(current)
	if err != nil {
		return merged, err
	}

	fields := map[string]jsoniter.RawMessage{}
	if err := utils.JSON.Unmarshal(base, &fields); err != nil {
		return merged, err
	}

	for key, value := range patch {
		if slices.Contains(domain.ImmutableFields, key) {
			continue
		}

		raw, err := utils.JSON.Marshal(value)
		if err != nil {
			return merged, err
		}
		fields[key] = raw
	}

	out, err := utils.JSON.Marshal(fields)
	if err != nil {
		return merged, err
	}

	if err := utils.JSON.Unmarshal(out, &merged); err != nil {
		return merged, err
	}

	return merged, nil
}
