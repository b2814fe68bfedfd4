package rostering

import (
	"errors"

	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/internal/store"
	"github.com/vfg2006/mua-studio-api/pkg/utils"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5, or 0 for unrated")

type RosterService interface {
	RecordCompletedJob(memberID string, rating float64) (domain.TeamMember, error)
	ActiveMembers() ([]domain.TeamMember, error)
}

type Service struct {
	store *store.Store
}

func NewService(s *store.Store) RosterService {
	return &Service{store: s}
}

// RecordCompletedJob incrementa os trabalhos concluídos e atualiza a média das avaliações.
// Avaliação 0 registra o trabalho sem avaliação.
func (s *Service) RecordCompletedJob(memberID string, rating float64) (domain.TeamMember, error) {
	if rating != 0 && (rating < 1 || rating > 5) {
		return domain.TeamMember{}, ErrInvalidRating
	}

	return s.store.Team().Mutate(memberID, func(member *domain.TeamMember) error {
		if rating > 0 {
			jobs := float64(member.CompletedJobs)
			member.Rating = utils.Round((member.Rating*jobs+rating)/(jobs+1), 2)
		}
		member.CompletedJobs++
		return nil
	})
}

func (s *Service) ActiveMembers() ([]domain.TeamMember, error) {
	members, err := s.store.Team().List()
	if err != nil {
		return nil, err
	}

	active := make([]domain.TeamMember, 0, len(members))
	for _, member := range members {
		if member.Active {
			active = append(active, member)
		}
	}
	return active, nil
}
