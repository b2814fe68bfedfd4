package repository

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/vfg2006/mua-studio-api/infrastructure/storage"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/pkg/utils"
)

// usersSlot guarda as contas do painel. Não é uma coleção do estúdio e fica fora da estimativa de uso.
const usersSlot = "auth.users"

var ErrUserNotFound = errors.New("user not found")

//go:generate mockgen -source=user.go -destination=mocks/mock_user.go -package=mocks
type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(user *domain.User) error
	GetUserByEmail(email string) (*domain.User, error)
	GetUserByID(userID string) (*domain.User, error)
	ListUser() ([]*domain.User, error)
}

type userRepository struct {
	mu      sync.Mutex
	backend storage.Backend
}

func NewUserRepository(backend storage.Backend) UserRepository {
	return &userRepository{
		backend: backend,
	}
}

func (r *userRepository) load() ([]*domain.User, error) {
	payload, exists, err := r.backend.Get(usersSlot)
	if err != nil {
		return nil, errors.Wrap(err, "lendo usuários")
	}
	if !exists || len(payload) == 0 {
		return []*domain.User{}, nil
	}

	var users []*domain.User
	if err := utils.JSON.Unmarshal(payload, &users); err != nil {
		return nil, errors.Wrap(err, "decodificando usuários")
	}
	return users, nil
}

func (r *userRepository) save(users []*domain.User) error {
	payload, err := utils.JSON.Marshal(users)
	if err != nil {
		return errors.Wrap(err, "codificando usuários")
	}
	return errors.Wrap(r.backend.Set(usersSlot, payload), "gravando usuários")
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	created := *user
	users = append(users, &created)
	if err := r.save(users); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) UpdateUser(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}

	for i, existing := range users {
		if existing.ID == user.ID {
			updated := *user
			users[i] = &updated
			return r.save(users)
		}
	}

	return errors.Wrapf(ErrUserNotFound, "id %s", user.ID)
}

// GetUserByEmail devolve nil, nil quando o email não está cadastrado
func (r *userRepository) GetUserByEmail(email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if strings.EqualFold(user.Email, email) {
			return user, nil
		}
	}
	return nil, nil
}

func (r *userRepository) GetUserByID(userID string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		if user.ID == userID {
			return user, nil
		}
	}
	return nil, errors.Wrapf(ErrUserNotFound, "id %s", userID)
}

func (r *userRepository) ListUser() ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, user := range users {
		user.PasswordHash = ""
	}
	return users, nil
}
