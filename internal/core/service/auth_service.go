package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tripnest/vacations-api/internal/api/metrics"
	"github.com/tripnest/vacations-api/internal/core/domain"
	"github.com/tripnest/vacations-api/internal/core/ports"
	"github.com/tripnest/vacations-api/internal/token"
)

// LoginThrottle abstracts the failed-attempt counter (Redis). It is
// defense-in-depth only: a throttle outage never loosens the credential
// or ban checks below.
type LoginThrottle interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const minPasswordLen = 4

// AuthService implements registration and the login gate sequence:
// credentials first, ban second, token last. The ordering is deliberate —
// the ban check must not leak whether an email/password pair was valid.
type AuthService struct {
	users    ports.UserRepository
	bans     ports.BanService
	issuer   *token.Issuer
	throttle LoginThrottle
	log      zerolog.Logger
}

// NewAuthService wires the login orchestrator. throttle may be nil.
func NewAuthService(
	users ports.UserRepository,
	bans ports.BanService,
	issuer *token.Issuer,
	throttle LoginThrottle,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{users: users, bans: bans, issuer: issuer, throttle: throttle, log: log}
}

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	in.Email = strings.TrimSpace(in.Email)
	if in.FirstName == "" || in.LastName == "" {
		return nil, fmt.Errorf("%w: first and last name are required", domain.ErrValidation)
	}
	if !emailPattern.MatchString(in.Email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrValidation)
	}
	if len(strings.TrimSpace(in.Password)) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	exists, err := s.users.EmailExists(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	if exists {
		return nil, domain.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	user := &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleMember,
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Int64("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return sanitize(created), nil
}

// Login runs the gate sequence. Unknown email and wrong password return the
// identical domain.ErrInvalidCredentials; only a banned account with correct
// credentials learns anything more.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		blocked, err := s.throttle.Blocked(ctx, email)
		if err != nil {
			s.log.Warn().Err(err).Msg("login throttle check failed, continuing")
		} else if blocked {
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	// Credentials are valid; a ban still refuses issuance. Already-issued
	// tokens are untouched and expire naturally.
	banned, ban, err := s.bans.IsBanned(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("login: ban check: %w", err)
	}
	if banned {
		metrics.LoginsTotal.WithLabelValues("banned").Inc()
		s.log.Info().Int64("user_id", user.ID).Time("until_at", ban.UntilAt).Msg("login refused, account banned")
		return nil, &domain.BannedError{Ban: *ban}
	}

	// Role is read fresh from the store on every login, never cached.
	tok, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("login: issue token: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("login throttle reset failed")
		}
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Int64("user_id", user.ID).Str("role", user.Role.String()).Msg("login succeeded")
	return &ports.LoginResult{User: *sanitize(user), Token: tok}, nil
}

// Profile returns the live account behind a verified identity.
func (s *AuthService) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return sanitize(user), nil
}

// EnsureAdmin creates the bootstrap admin account when it does not exist.
// Called once at startup; a blank email disables seeding.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}
	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if exists {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	admin := &domain.User{
		FirstName:    "Admin",
		LastName:     "Admin",
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	created, err := s.users.Create(ctx, admin)
	if err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	s.log.Info().Int64("user_id", created.ID).Str("email", email).Msg("seeded admin account")
	return nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login throttle record failed")
	}
}

func sanitize(u *domain.User) *domain.User {
	clean := *u
	clean.PasswordHash = ""
	return &clean
}
