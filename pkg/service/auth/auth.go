package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain"
	"github.com/amirasaad/ledger/pkg/domain/person"
	"github.com/amirasaad/ledger/pkg/repository"
	personrepo "github.com/amirasaad/ledger/pkg/repository/person"
	"github.com/amirasaad/ledger/pkg/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenPrefix is prepended to issued tokens so clients can send them as-is
// in the Authorization header.
const TokenPrefix = "Bearer "

// PersonIDClaim names the JWT claim holding the authenticated person's id.
const PersonIDClaim = "person_id"

// Hash of a random password, compared when the document is unknown so a
// miss costs the same as a wrong password.
const dummyHash = "$2a$10$7zFqzDbD3RrlkMTczbXG9OWZ0FLOXjIxXzSZ.QZxkVXjXcx7QZQiC"

type Strategy interface {
	Login(ctx context.Context, document, password string) (*person.Person, error)
	GenerateToken(ctx context.Context, p *person.Person) (string, error)
	PersonID(token *jwt.Token) (uuid.UUID, error)
}

type Service struct {
	strategy Strategy
	logger   *slog.Logger
}

func New(strategy Strategy, logger *slog.Logger) *Service {
	return &Service{strategy: strategy, logger: logger}
}

func NewWithJWT(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *Service {
	return New(NewJWTStrategy(uow, cfg, logger), logger)
}

func NewWithBasic(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return New(&BasicStrategy{uow: uow, logger: logger}, logger)
}

// Login checks document and password and returns the matching person.
func (s *Service) Login(
	ctx context.Context,
	document, password string,
) (*person.Person, error) {
	log := s.logger.With("context", "Login")
	p, err := s.strategy.Login(ctx, utils.OnlyDigits(document), password)
	if err != nil {
		log.Warn("Login failed", "error", err)
		return nil, err
	}
	log.Info("Login successful", "person_id", p.ID)
	return p, nil
}

// GenerateToken issues a token for p, already carrying TokenPrefix.
func (s *Service) GenerateToken(ctx context.Context, p *person.Person) (string, error) {
	token, err := s.strategy.GenerateToken(ctx, p)
	if err != nil {
		s.logger.Error("GenerateToken failed", "person_id", p.ID, "error", err)
		return "", err
	}
	return token, nil
}

// CurrentPersonID extracts the authenticated person from a verified token.
func (s *Service) CurrentPersonID(token *jwt.Token) (uuid.UUID, error) {
	id, err := s.strategy.PersonID(token)
	if err != nil {
		s.logger.Warn("CurrentPersonID failed", "error", err)
	}
	return id, err
}

// JWTStrategy issues HS256 tokens with a person_id claim.
type JWTStrategy struct {
	uow    repository.UnitOfWork
	cfg    *config.Jwt
	logger *slog.Logger
	now    func() time.Time
}

func NewJWTStrategy(
	uow repository.UnitOfWork,
	cfg *config.Jwt,
	logger *slog.Logger,
) *JWTStrategy {
	return &JWTStrategy{uow: uow, cfg: cfg, logger: logger, now: time.Now}
}

func (s *JWTStrategy) Login(ctx context.Context, document, password string) (*person.Person, error) {
	return checkCredentials(ctx, s.uow, document, password)
}

func (s *JWTStrategy) GenerateToken(_ context.Context, p *person.Person) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		PersonIDClaim: p.ID.String(),
		"exp":         s.now().Add(s.cfg.Expiry).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", err
	}
	return TokenPrefix + signed, nil
}

func (s *JWTStrategy) PersonID(token *jwt.Token) (uuid.UUID, error) {
	if token == nil || !token.Valid {
		return uuid.Nil, person.ErrPersonUnauthorized
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, person.ErrPersonUnauthorized
	}
	raw, ok := claims[PersonIDClaim].(string)
	if !ok {
		return uuid.Nil, person.ErrPersonUnauthorized
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", person.ErrPersonUnauthorized, err)
	}
	return id, nil
}

// Parse verifies a raw token string, with or without TokenPrefix.
func (s *JWTStrategy) Parse(raw string) (*jwt.Token, error) {
	token, err := jwt.Parse(strings.TrimPrefix(raw, TokenPrefix), func(t *jwt.Token) (any, error) {
		return []byte(s.cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", person.ErrPersonUnauthorized, err)
	}
	return token, nil
}

// BasicStrategy checks credentials only; used by the CLI, which talks to the
// database directly and never needs a token.
type BasicStrategy struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

func (s *BasicStrategy) Login(ctx context.Context, document, password string) (*person.Person, error) {
	return checkCredentials(ctx, s.uow, document, password)
}

func (s *BasicStrategy) GenerateToken(context.Context, *person.Person) (string, error) {
	return "", nil
}

func (s *BasicStrategy) PersonID(*jwt.Token) (uuid.UUID, error) {
	return uuid.Nil, person.ErrPersonUnauthorized
}

func checkCredentials(
	ctx context.Context,
	uow repository.UnitOfWork,
	document, password string,
) (*person.Person, error) {
	repo, err := repository.Resolve[personrepo.Repository](uow)
	if err != nil {
		return nil, err
	}
	p, err := repo.GetByDocument(ctx, document)
	if errors.Is(err, domain.ErrNotFound) {
		_ = utils.CheckPasswordHash(password, dummyHash)
		return nil, person.ErrPersonUnauthorized
	}
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(password, p.Password) {
		return nil, person.ErrPersonUnauthorized
	}
	return p, nil
}
