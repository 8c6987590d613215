// Package auth implements the session gate for the admin area: credential
// checking, a time-boxed session persisted in a durable slot, and lazy
// expiry evaluated when the session is restored at startup.
package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Aljenshin/portfolio-console/internal/logging"
	"github.com/Aljenshin/portfolio-console/internal/slots"
)

// SlotKey names the durable slot holding the session record.
const SlotKey = "admin_auth"

// State is the gate's lifecycle state.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"

	// StateExpired is a transient detection outcome inside Restore. It is
	// never stored and collapses to StateUnauthenticated immediately.
	StateExpired State = "expired"
)

// sessionRecord is the JSON shape written to the durable slot.
type sessionRecord struct {
	Authenticated bool      `json:"authenticated"`
	Operator      *Operator `json:"operator"`
	LoginTime     time.Time `json:"loginTime"`
}

// Service is the session gate. It assumes a single logical session of use
// at a time; there is no cross-goroutine locking discipline.
type Service struct {
	cred     Credential
	slots    slots.Repository
	validity time.Duration
	delay    time.Duration
	logger   logging.Logger

	state    State
	operator *Operator

	now   func() time.Time
	sleep func(time.Duration)
}

// NewService builds a gate around the injected credential record.
// validity bounds how long a stored session stays acceptable; delay is the
// simulated round-trip applied to Login (zero disables it).
func NewService(cred Credential, repo slots.Repository, validity, delay time.Duration, logger logging.Logger) *Service {
	return &Service{
		cred:     cred,
		slots:    repo,
		validity: validity,
		delay:    delay,
		logger:   logger,
		state:    StateUnauthenticated,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// State returns the current lifecycle state.
func (s *Service) State() State {
	return s.state
}

// IsAuthenticated reports whether an operator session is established.
func (s *Service) IsAuthenticated() bool {
	return s.state == StateAuthenticated
}

// Operator returns the sanitized operator of the current session, or nil
// when logged out.
func (s *Service) Operator() *Operator {
	return s.operator
}

// Login validates the supplied credentials and, on success, persists a fresh
// session record and transitions to StateAuthenticated.
//
// The username is accepted when it matches either the configured username or
// the configured email, case-sensitively. The password check is an exact,
// constant-time comparison. A failed attempt returns (false, nil) and writes
// nothing; the gate reports no reason, attempt counting is the caller's
// concern. An error is returned only when persisting the record fails, in
// which case the gate stays logged out.
func (s *Service) Login(ctx context.Context, username, password string) (bool, error) {
	s.state = StateAuthenticating

	// Simulated remote round-trip. Purely cosmetic: it always resolves and
	// carries no cancellation semantics.
	if s.delay > 0 {
		s.sleep(s.delay)
	}

	validUser := username == s.cred.Username || username == s.cred.Email
	validPassword := subtle.ConstantTimeCompare([]byte(password), []byte(s.cred.Password)) == 1

	if !validUser || !validPassword {
		s.logger.Info(ctx, "login rejected", "username", username)
		s.reset()
		return false, nil
	}

	op := s.cred.Sanitized()
	rec := sessionRecord{
		Authenticated: true,
		Operator:      &op,
		LoginTime:     s.now().UTC(),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		s.reset()
		return false, fmt.Errorf("encode session record: %w", err)
	}
	if err := s.slots.Set(ctx, SlotKey, data); err != nil {
		s.reset()
		return false, fmt.Errorf("save session record: %w", err)
	}

	s.operator = &op
	s.state = StateAuthenticated
	s.logger.Info(ctx, "login accepted", "operator", op.Username)
	return true, nil
}

// Restore loads the persisted session once at startup.
//
// A missing slot leaves the gate logged out. A malformed or incomplete
// record is recovered locally: the slot is cleared and the gate stays logged
// out, never surfacing the problem to the caller. A record older than the
// configured validity is treated as expired, clearing the slot the same way.
// This is the sole expiry check; a session is never invalidated between
// restores.
func (s *Service) Restore(ctx context.Context) error {
	data, err := s.slots.Get(ctx, SlotKey)
	if err != nil {
		return fmt.Errorf("read session record: %w", err)
	}
	if data == nil {
		s.reset()
		return nil
	}

	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil || !rec.Authenticated || rec.Operator == nil {
		s.logger.Warn(ctx, "discarding malformed session record")
		if err := s.slots.Delete(ctx, SlotKey); err != nil {
			s.logger.Error(ctx, "failed to clear session slot", "error", err.Error())
		}
		s.reset()
		return nil
	}

	if s.now().Sub(rec.LoginTime) >= s.validity {
		s.state = StateExpired
		s.logger.Info(ctx, "session expired", "operator", rec.Operator.Username)
		if err := s.slots.Delete(ctx, SlotKey); err != nil {
			s.reset()
			return fmt.Errorf("clear expired session: %w", err)
		}
		s.reset()
		return nil
	}

	s.operator = rec.Operator
	s.state = StateAuthenticated
	s.logger.Info(ctx, "session restored", "operator", rec.Operator.Username)
	return nil
}

// Logout clears the durable slot and resets the gate. It has no
// precondition and is idempotent.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.slots.Delete(ctx, SlotKey); err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}
	s.reset()
	return nil
}

func (s *Service) reset() {
	s.state = StateUnauthenticated
	s.operator = nil
}
