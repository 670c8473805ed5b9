package service

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/pgnest/hostel-system/internal/core/domain"
	"github.com/pgnest/hostel-system/internal/core/ports"
)

// SessionService owns every session in the process. All mutation goes through
// the operations below; the mutex serializes them the way the source's single
// event loop did. Shadow writes are best-effort: a failed mirror is logged and
// never fails the operation that triggered it.
type SessionService struct {
	registry  ports.CredentialRegistry
	shadow    ports.SessionShadow
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger

	mu       sync.RWMutex
	sessions map[string]*domain.Session
}

func NewSessionService(registry ports.CredentialRegistry, shadow ports.SessionShadow, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		registry:  registry,
		shadow:    shadow,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		sessions:  make(map[string]*domain.Session),
	}
}

// Login resolves the credentials against the registry and, on a match, creates
// an authenticated session and issues its bearer token. A failed lookup leaves
// all session state untouched.
func (s *SessionService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	identity, err := s.registry.Lookup(input.Email, input.Password, input.Role, input.AdminSubRole)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := domain.NewSession(uuid.NewString(), now)
	session.Authenticate(identity, now)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	s.mirror(ctx, session)

	if input.Remember {
		rec := ports.RememberedCredentials{
			Email:        input.Email,
			Password:     input.Password,
			Role:         input.Role,
			AdminSubRole: input.AdminSubRole,
		}
		if err := s.shadow.SaveRemembered(ctx, rec); err != nil {
			s.log.Warn().Err(err).Str("session_id", session.ID).Msg("failed to save remembered credentials")
		}
	}

	token, err := s.generateToken(session)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("session_id", session.ID).
		Str("role", string(session.Role)).
		Str("sub_role", string(session.AdminSubRole)).
		Msg("session authenticated")

	return &ports.LoginResult{Session: clone(session), Token: token}, nil
}

// Logout resets the session to the initial unauthenticated state and clears
// its shadow records. Idempotent: logging out an unknown or already
// unauthenticated session is a no-op that still succeeds.
func (s *SessionService) Logout(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	if session, ok := s.sessions[sessionID]; ok {
		session.Reset(time.Now().UTC())
	}
	s.mu.Unlock()

	if err := s.shadow.DeleteSnapshot(ctx, sessionID); err != nil {
		s.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to delete session snapshot")
	}
	if err := s.shadow.DeleteRemembered(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to delete remembered credentials")
	}

	s.log.Info().Str("session_id", sessionID).Msg("session logged out")
	return nil
}

// SetRole overwrites the session role and mirrors the snapshot. Consistency
// with the sub-role is the caller's responsibility.
func (s *SessionService) SetRole(ctx context.Context, sessionID string, role domain.Role) (*domain.Session, error) {
	return s.mutate(ctx, sessionID, func(session *domain.Session) {
		session.Role = role
	})
}

// SetAdminSubRole overwrites the admin sub-role and mirrors the snapshot. It
// does not validate that the role is admin.
func (s *SessionService) SetAdminSubRole(ctx context.Context, sessionID string, subRole domain.AdminSubRole) (*domain.Session, error) {
	return s.mutate(ctx, sessionID, func(session *domain.Session) {
		session.AdminSubRole = subRole
	})
}

// UpdateUser replaces the session identity wholesale and mirrors the snapshot.
func (s *SessionService) UpdateUser(ctx context.Context, sessionID string, identity domain.Identity) (*domain.Session, error) {
	return s.mutate(ctx, sessionID, func(session *domain.Session) {
		session.Identity = &identity
	})
}

// Get resolves a session by ID. Sessions written by an earlier process are
// rehydrated from the shadow snapshot on first sight.
func (s *SessionService) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[sessionID]
	s.mu.RUnlock()
	if ok {
		return clone(session), nil
	}

	snap, err := s.shadow.LoadSnapshot(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	restored := &domain.Session{
		ID:            snap.SessionID,
		Identity:      snap.Identity,
		Role:          snap.Role,
		AdminSubRole:  snap.AdminSubRole,
		Authenticated: snap.Authenticated,
		CreatedAt:     snap.UpdatedAt,
		UpdatedAt:     snap.UpdatedAt,
	}

	s.mu.Lock()
	// Another request may have rehydrated while the lock was free.
	if existing, ok := s.sessions[sessionID]; ok {
		restored = existing
	} else {
		s.sessions[sessionID] = restored
	}
	s.mu.Unlock()

	return clone(restored), nil
}

// Resume performs the automatic login from remembered credentials. The replay
// uses the role and sub-role persisted with the pair. A failed attempt clears
// the remembered record silently; the caller continues unauthenticated either
// way.
func (s *SessionService) Resume(ctx context.Context) (*domain.Session, error) {
	rec, err := s.shadow.LoadRemembered(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read remembered credentials")
		return nil, nil
	}
	if rec == nil {
		return nil, nil
	}

	result, err := s.Login(ctx, ports.LoginInput{
		Email:        rec.Email,
		Password:     rec.Password,
		Role:         rec.Role,
		AdminSubRole: rec.AdminSubRole,
	})
	if err != nil {
		if delErr := s.shadow.DeleteRemembered(ctx); delErr != nil {
			s.log.Warn().Err(delErr).Msg("failed to clear stale remembered credentials")
		}
		s.log.Info().Str("email", rec.Email).Msg("auto-login failed, remembered credentials cleared")
		return nil, nil
	}

	s.log.Info().Str("session_id", result.Session.ID).Msg("session resumed from remembered credentials")
	return result.Session, nil
}

// mutate applies fn to the session under the lock, then mirrors the result.
func (s *SessionService) mutate(ctx context.Context, sessionID string, fn func(*domain.Session)) (*domain.Session, error) {
	if _, err := s.Get(ctx, sessionID); err != nil {
		return nil, err
	}

	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	fn(session)
	session.UpdatedAt = time.Now().UTC()
	snapshot := clone(session)
	s.mu.Unlock()

	s.mirror(ctx, snapshot)
	return snapshot, nil
}

// mirror writes the session snapshot to the shadow. Best-effort.
func (s *SessionService) mirror(ctx context.Context, session *domain.Session) {
	snap := ports.SessionSnapshot{
		SessionID:     session.ID,
		Identity:      session.Identity,
		Role:          session.Role,
		AdminSubRole:  session.AdminSubRole,
		Authenticated: session.Authenticated,
		UpdatedAt:     session.UpdatedAt,
	}
	if err := s.shadow.SaveSnapshot(ctx, snap); err != nil {
		s.log.Warn().Err(err).Str("session_id", session.ID).Msg("failed to mirror session snapshot")
	}
}

func (s *SessionService) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"session_id": session.ID,
		"role":       string(session.Role),
		"sub_role":   string(session.AdminSubRole),
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func clone(session *domain.Session) *domain.Session {
	if session == nil {
		return nil
	}
	copied := *session
	if session.Identity != nil {
		identity := *session.Identity
		copied.Identity = &identity
	}
	return &copied
}
