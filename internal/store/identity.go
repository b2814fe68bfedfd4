package store

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/vfg2006/mua-studio-api/pkg/utils"
)

// IDIssuer gera os identificadores atribuídos pelo store
type IDIssuer interface {
	// NewID gera o ID interno da entidade, único dentro do processo
	NewID() (string, error)
	// NewPublicID gera o identificador público (portalId/publicId), independente do ID interno
	NewPublicID() (string, error)
}

// Issuer usa snowflake (timestamp + nó + sequência) para IDs internos, evitando colisões
// no mesmo milissegundo, e nanoid para identificadores públicos não adivinháveis.
type Issuer struct {
	node *snowflake.Node
}

// NewIssuer cria um Issuer para o nó informado (0-1023)
func NewIssuer(nodeID int64) (*Issuer, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Issuer{node: node}, nil
}

func (i *Issuer) NewID() (string, error) {
	return i.node.Generate().String(), nil
}

func (i *Issuer) NewPublicID() (string, error) {
	return utils.GeneratePublicID()
}

// SequenceIssuer gera IDs determinísticos ("<prefixo>-1", "<prefixo>-2"...). Útil em testes.
type SequenceIssuer struct {
	mu       sync.Mutex
	prefix   string
	next     int
	nextPub  int
	pubLabel string
}

func NewSequenceIssuer(prefix string) *SequenceIssuer {
	return &SequenceIssuer{prefix: prefix, pubLabel: "pub"}
}

func (s *SequenceIssuer) NewID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	return s.prefix + "-" + itoa(s.next), nil
}

func (s *SequenceIssuer) NewPublicID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPub++
	return s.pubLabel + "-" + s.prefix + "-" + itoa(s.nextPub), nil
}
