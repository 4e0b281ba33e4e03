// Package auth is the mock credential store that gates access to the board.
//
// Accounts live in the service itself, seeded with two demo users. A login
// issues a signed session token bound to the local OS account. The session
// (current user, flag and token) is mirrored under models.AuthStorageKey and
// registered accounts under their own key, so both survive restarts. Logging
// out only clears the session; board data is never touched here.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/thenoetrevino/flowmaster/internal/storage"
	"github.com/thenoetrevino/flowmaster/internal/types"
	"golang.org/x/crypto/bcrypt"
)

// DefaultSessionTTL is how long a session token stays valid.
const DefaultSessionTTL = 7 * 24 * time.Hour

// defaultSecret signs session tokens when no secret is configured.
const defaultSecret = "flowmaster-local-session-key"

// User is the identity of an authenticated account. It never carries a password.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// account is a User plus its bcrypt password hash.
type account struct {
	User
	PasswordHash string `json:"passwordHash"`
}

// session is the persisted authentication aggregate.
type session struct {
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	Token           string `json:"token,omitempty"`
}

// Service holds the accounts and the current session.
type Service struct {
	mu       sync.Mutex
	accounts map[string]account // by lowercased email
	session  session
	lastErr  string

	sessionMirror storage.Mirror
	accountMirror storage.Mirror
	secret        []byte
	hashCost      int
	ttl           time.Duration
	host          string
	now           func() time.Time
	newID         types.IDFunc
	logger        *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithSessionMirror persists the session through m.
func WithSessionMirror(m storage.Mirror) Option {
	return func(s *Service) {
		s.sessionMirror = m
	}
}

// WithAccountMirror persists registered accounts through m.
func WithAccountMirror(m storage.Mirror) Option {
	return func(s *Service) {
		s.accountMirror = m
	}
}

// WithSecret sets the key session tokens are signed with.
func WithSecret(secret string) Option {
	return func(s *Service) {
		if secret != "" {
			s.secret = []byte(secret)
		}
	}
}

// WithHashCost sets the bcrypt cost used for password hashes.
func WithHashCost(cost int) Option {
	return func(s *Service) {
		if cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost {
			s.hashCost = cost
		}
	}
}

// WithSessionTTL sets how long issued sessions last.
func WithSessionTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithHost binds sessions to a specific local account name.
func WithHost(host string) Option {
	return func(s *Service) {
		s.host = host
	}
}

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator sets the id generator for registered accounts.
func WithIDGenerator(fn types.IDFunc) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// seedAccounts are the demo logins every service starts with.
var seedAccounts = []struct {
	id, email, password, name string
}{
	{"1", "admin@flowmaster.com", "password123", "Admin User"},
	{"2", "demo@example.com", "demo123", "Demo User"},
}

// New creates a service with the seeded demo accounts and no session.
func New(opts ...Option) *Service {
	s := &Service{
		accounts: make(map[string]account),
		secret:   []byte(defaultSecret),
		hashCost: bcrypt.DefaultCost,
		ttl:      DefaultSessionTTL,
		now:      time.Now,
		newID:    types.NewID,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.host == "" {
		s.host = LocalUsername()
	}

	created := s.now().UTC()
	for _, seed := range seedAccounts {
		hash, err := s.hashPassword(seed.password)
		if err != nil {
			s.logger.Error("failed to hash seeded password", "email", seed.email, "error", err)
			continue
		}
		s.accounts[normalizeEmail(seed.email)] = account{
			User: User{
				ID:        seed.id,
				Email:     seed.email,
				Name:      seed.name,
				CreatedAt: created,
			},
			PasswordHash: hash,
		}
	}
	return s
}

// Load restores registered accounts and the session from their mirrors.
// Unreadable state is logged and ignored.
func (s *Service) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.accountMirror != nil {
		var stored []account
		found, err := s.accountMirror.Load(ctx, &stored)
		if err != nil {
			s.logger.Warn("failed to load accounts", "error", err)
		} else if found {
			for _, acct := range stored {
				key := normalizeEmail(acct.Email)
				if _, seeded := s.accounts[key]; seeded || key == "" {
					continue
				}
				s.accounts[key] = acct
			}
		}
	}

	if s.sessionMirror != nil {
		var stored session
		found, err := s.sessionMirror.Load(ctx, &stored)
		if err != nil {
			s.logger.Warn("failed to load session, starting logged out", "error", err)
			return
		}
		if found {
			s.session = stored
		}
	}
}

// Login starts a session for the account matching email and password.
func (s *Service) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""

	acct, ok := s.accounts[normalizeEmail(email)]
	if !ok || !checkPassword(acct.PasswordHash, password) {
		s.logger.Debug("login rejected", "email", email)
		return s.fail(ErrInvalidCredentials)
	}

	if err := s.startSession(ctx, acct.User); err != nil {
		return s.fail(err)
	}
	s.logger.Info("user logged in", "user_id", acct.ID)
	return nil
}

// Register creates an account and logs it in. The display name is the
// email's local part.
func (s *Service) Register(ctx context.Context, email, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return s.fail(ErrMissingCredentials)
	}
	local, domain, found := strings.Cut(email, "@")
	if !found || local == "" || domain == "" {
		return s.fail(ErrInvalidEmail)
	}

	key := normalizeEmail(email)
	if _, exists := s.accounts[key]; exists {
		return s.fail(ErrEmailTaken)
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return s.fail(err)
	}

	acct := account{
		User: User{
			ID:        s.newID(),
			Email:     email,
			Name:      local,
			CreatedAt: s.now().UTC(),
		},
		PasswordHash: hash,
	}
	s.accounts[key] = acct
	s.saveAccounts(ctx)

	if err := s.startSession(ctx, acct.User); err != nil {
		return s.fail(err)
	}
	s.logger.Info("user registered", "user_id", acct.ID)
	return nil
}

// Logout ends the session. Board data is left alone.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = session{}
	s.lastErr = ""
	s.saveSession(ctx)
}

// IsAuthenticated reports whether a session is active and its token still
// verifies.
func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated()
}

// CurrentUser returns the logged-in user.
func (s *Service) CurrentUser() (*User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticated() {
		return nil, false
	}
	u := *s.session.User
	return &u, true
}

// SessionExpiry returns when the current session ends.
func (s *Service) SessionExpiry() (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticated() {
		return time.Time{}, false
	}
	return tokenExpiry(s.session.Token), true
}

// LastError returns the message of the last failed login or registration.
func (s *Service) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// ClearError clears the last error message.
func (s *Service) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastErr = ""
}

// authenticated checks the session. Callers hold s.mu.
func (s *Service) authenticated() bool {
	if !s.session.IsAuthenticated || s.session.User == nil {
		return false
	}
	if err := s.verifyToken(s.session.Token, *s.session.User); err != nil {
		s.logger.Debug("session rejected", "error", err)
		return false
	}
	return true
}

// startSession issues a token for u and persists the session. Callers hold s.mu.
func (s *Service) startSession(ctx context.Context, u User) error {
	token, err := s.issueToken(u)
	if err != nil {
		return err
	}
	s.session = session{User: &u, IsAuthenticated: true, Token: token}
	s.saveSession(ctx)
	return nil
}

// fail records err for LastError and returns it. Callers hold s.mu.
func (s *Service) fail(err error) error {
	s.lastErr = message(err)
	return err
}

func (s *Service) saveSession(ctx context.Context) {
	if s.sessionMirror == nil {
		return
	}
	if err := s.sessionMirror.Save(ctx, s.session); err != nil {
		s.logger.Error("failed to persist session", "error", err)
	}
}

// saveAccounts persists every non-seeded account. Callers hold s.mu.
func (s *Service) saveAccounts(ctx context.Context) {
	if s.accountMirror == nil {
		return
	}
	seeded := make(map[string]bool, len(seedAccounts))
	for _, seed := range seedAccounts {
		seeded[normalizeEmail(seed.email)] = true
	}

	registered := []account{}
	for key, acct := range s.accounts {
		if !seeded[key] {
			registered = append(registered, acct)
		}
	}
	if err := s.accountMirror.Save(ctx, registered); err != nil {
		s.logger.Error("failed to persist accounts", "error", err)
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func checkPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GetID returns the account id.
func (u *User) GetID() string {
	return u.ID
}

// String implements fmt.Stringer for log output.
func (u *User) String() string {
	return fmt.Sprintf("%s <%s>", u.Name, u.Email)
}
