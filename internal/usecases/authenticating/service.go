package authenticating

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/mua-studio-api/infrastructure/repository"
	"github.com/vfg2006/mua-studio-api/internal/config"
	"github.com/vfg2006/mua-studio-api/internal/domain"
	"github.com/vfg2006/mua-studio-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numberChars  = "0123456789"
	specialChars = "!@#$%^&*()-_=+[]{}|;:,.<>?"
)

// SignUpRequest são os dados de cadastro de uma nova conta do painel
type SignUpRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	StudioName string `json:"studioName,omitempty"`
}

// SignInResult é devolvido no login
type SignInResult struct {
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
	Profile   *domain.Profile `json:"profile"`
}

type Authenticator interface {
	SignUp(request SignUpRequest) (*domain.Profile, error)
	SignIn(email, password string) (*SignInResult, error)
	SignOut(tokenString string) error
	CurrentSession(tokenString string) (*domain.Session, error)
	ResetPassword(email string) (string, error)
	ChangePassword(userID string, currentPassword, newPassword string) error
	GetProfile(userID string) (*domain.Profile, error)
	ValidatePasswordStrength(password string) error
}

type Service struct {
	userRepo    repository.UserRepository
	secret      []byte
	tokenTTL    time.Duration
	allowSignUp bool
	clock       func() time.Time

	signUpMu sync.Mutex

	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewService(userRepo repository.UserRepository, cfg *config.Config) *Service {
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Service{
		userRepo:    userRepo,
		secret:      []byte(cfg.Auth.Secret),
		tokenTTL:    ttl,
		allowSignUp: cfg.Auth.AllowSignUp,
		clock:       time.Now,
		revoked:     make(map[string]time.Time),
	}
}

// WithClock troca o relógio usado para emitir e validar tokens
func (s *Service) WithClock(clock func() time.Time) *Service {
	s.clock = clock
	return s
}

// SignUp cria a conta do painel. Todas as contas enxergam o mesmo estúdio, então depois
// da primeira conta o cadastro só fica aberto com AUTH_ALLOW_SIGN_UP.
func (s *Service) SignUp(request SignUpRequest) (*domain.Profile, error) {
	if request.Email == "" || request.Name == "" || request.Password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	if err := s.ValidatePasswordStrength(request.Password); err != nil {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, err.Error())
	}

	email := handleEmail(request.Email)

	s.signUpMu.Lock()
	defer s.signUpMu.Unlock()

	existing, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")
	}

	if !s.allowSignUp {
		users, err := s.userRepo.ListUser()
		if err != nil {
			return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
		if len(users) > 0 {
			logrus.WithField("user_email", email).Warn("Cadastro recusado: o estúdio já tem uma conta")
			return nil, NewAuthError(ErrSignUpClosed, apiErrors.ErrSignUpClosed, "O cadastro está fechado; peça acesso ao dono do estúdio")
		}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock()
	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(request.Name),
		Email:        email,
		PasswordHash: string(hashedPassword),
		Active:       true,
		StudioName:   request.StudioName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	user, err = s.userRepo.CreateUser(user)
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar usuário")
	}

	return user.Profile(), nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) SignIn(email, password string) (*SignInResult, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	user, err := s.userRepo.GetUserByEmail(handleEmail(email))
	if err != nil {
		return nil, NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar usuário")
	}

	if user == nil {
		return nil, NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	if !user.Active {
		return nil, NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Senha incorreta")
	}

	token, expiresAt, err := s.generateJWT(user)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &SignInResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Profile:   user.Profile(),
	}, nil
}

func (s *Service) generateJWT(user *domain.User) (string, time.Time, error) {
	now := s.clock()
	expiresAt := now.Add(s.tokenTTL)

	claims := domain.Claims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	return signed, expiresAt, err
}

func (s *Service) parseToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.clock))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}
	return claims, nil
}

// CurrentSession valida o token e devolve a sessão, recusando tokens encerrados por SignOut
func (s *Service) CurrentSession(tokenString string) (*domain.Session, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	_, revoked := s.revoked[claims.ID]
	s.mu.Unlock()

	if revoked {
		return nil, NewUserAuthError(ErrRevokedToken, apiErrors.ErrInvalidToken, claims.UserID, "")
	}

	return claims.Session(), nil
}

// SignOut encerra a sessão do token. A revogação vive em memória até o token expirar.
func (s *Service) SignOut(tokenString string) error {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}

	now := s.clock()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, expiresAt := range s.revoked {
		if now.After(expiresAt) {
			delete(s.revoked, id)
		}
	}
	s.revoked[claims.ID] = claims.ExpiresAt.Time

	logrus.WithField("user_id", claims.UserID).Info("Sessão encerrada")
	return nil
}

// ResetPassword gera uma senha forte para a conta e devolve a senha em texto puro,
// para ser entregue ao usuário fora da aplicação.
func (s *Service) ResetPassword(email string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(handleEmail(email))
	if err != nil {
		return "", NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuário não encontrado")
	}

	newPassword, err := generateStrongPassword(12)
	if err != nil {
		return "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user.PasswordHash = string(hashedPassword)
	user.UpdatedAt = s.clock()
	if err := s.userRepo.UpdateUser(user); err != nil {
		return "", NewUserAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, user.ID, err.Error())
	}

	return newPassword, nil
}

// ChangePassword permite que um usuário altere sua própria senha
func (s *Service) ChangePassword(userID string, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, err.Error())
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrPasswordMismatch, apiErrors.ErrInvalidCredentials, userID, "")
	}

	if currentPassword == newPassword {
		return NewUserAuthError(ErrSamePassword, apiErrors.ErrInvalidRequest, userID, "")
	}

	if err := s.ValidatePasswordStrength(newPassword); err != nil {
		return NewUserAuthError(ErrWeakPassword, apiErrors.ErrInvalidFormat, userID, err.Error())
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	user.UpdatedAt = s.clock()
	return s.userRepo.UpdateUser(user)
}

func (s *Service) GetProfile(userID string) (*domain.Profile, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	return user.Profile(), nil
}

// generateStrongPassword gera uma senha com pelo menos uma letra maiúscula,
// uma minúscula, um número e um caractere especial
func generateStrongPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const allChars = lowerChars + upperChars + numberChars + specialChars

	password := make([]byte, length)
	for i, charset := range []string{lowerChars, upperChars, numberChars, specialChars} {
		randomChar, err := getRandomChar(charset)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	for i := 4; i < length; i++ {
		randomChar, err := getRandomChar(allChars)
		if err != nil {
			return "", err
		}
		password[i] = randomChar
	}

	// Embaralhar a senha para que os caracteres não fiquem em ordem previsível
	for i := range password {
		j, err := randomInt(int64(len(password)))
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

// getRandomChar retorna um caractere aleatório do conjunto fornecido
func getRandomChar(charset string) (byte, error) {
	n, err := randomInt(int64(len(charset)))
	if err != nil {
		return 0, err
	}
	return charset[n], nil
}

// randomInt gera um número aleatório seguro entre 0 e max-1
func randomInt(max int64) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(max))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// ValidatePasswordStrength exige 8 caracteres com maiúsculas, minúsculas, números e especiais
func (s *Service) ValidatePasswordStrength(password string) error {
	if len(password) < 8 {
		return errors.New("a senha deve conter pelo menos 8 caracteres")
	}

	var hasUpper, hasLower, hasNumber, hasSpecial bool
	for _, char := range password {
		switch {
		case strings.ContainsRune(lowerChars, char):
			hasLower = true
		case strings.ContainsRune(upperChars, char):
			hasUpper = true
		case strings.ContainsRune(numberChars, char):
			hasNumber = true
		case strings.ContainsRune(specialChars, char):
			hasSpecial = true
		}
	}

	if !hasUpper {
		return errors.New("a senha deve conter pelo menos uma letra maiúscula")
	}
	if !hasLower {
		return errors.New("a senha deve conter pelo menos uma letra minúscula")
	}
	if !hasNumber {
		return errors.New("a senha deve conter pelo menos um número")
	}
	if !hasSpecial {
		return errors.New("a senha deve conter pelo menos um caractere especial")
	}

	return nil
}
