package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const DefaultRefreshTimeout = 30 * time.Second

var (
	ErrNoRefreshToken = errors.New("no refresh token stored")
	ErrSessionEnded   = errors.New("session ended")
)

// State is the shared session of one user: the cached credential pair, the
// store behind it and the gate that keeps at most one refresh exchange in
// flight. Every client of the same user must share one State.
type State struct {
	store          Store
	log            *zap.Logger
	refreshTimeout time.Duration

	mu     sync.RWMutex
	creds  Credentials
	loaded bool

	// flight coalesces callers rejected with the same access token; cycleMu
	// keeps cycles started from different tokens from exchanging at once.
	flight  singleflight.Group
	cycleMu sync.Mutex
}

type Option func(*State)

func WithLogger(l *zap.Logger) Option {
	return func(s *State) {
		if l != nil {
			s.log = l
		}
	}
}

func WithRefreshTimeout(d time.Duration) Option {
	return func(s *State) {
		if d > 0 {
			s.refreshTimeout = d
		}
	}
}

func NewState(store Store, opts ...Option) *State {
	s := &State{
		store:          store,
		log:            zap.NewNop(),
		refreshTimeout: DefaultRefreshTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Current returns the cached pair, loading it from the store on first use.
func (s *State) Current(ctx context.Context) (Credentials, error) {
	s.mu.RLock()
	if s.loaded {
		creds := s.creds
		s.mu.RUnlock()
		return creds, nil
	}
	s.mu.RUnlock()

	return s.Reload(ctx)
}

// Reload replaces the cached pair with whatever the store holds now.
func (s *State) Reload(ctx context.Context) (Credentials, error) {
	creds, err := s.store.Load(ctx)
	if err != nil {
		return Credentials{}, fmt.Errorf("failed to load credentials: %w", err)
	}

	s.mu.Lock()
	s.creds = creds
	s.loaded = true
	s.mu.Unlock()

	return creds, nil
}

// Replace stores a new pair. The cached copy is updated even when the store
// write fails so the running process keeps working.
func (s *State) Replace(ctx context.Context, creds Credentials) error {
	s.mu.Lock()
	s.creds = creds
	s.loaded = true
	s.mu.Unlock()

	if err := s.store.Save(ctx, creds); err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}

// Clear drops both tokens from memory and from the store.
func (s *State) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.creds = Credentials{}
	s.loaded = true
	s.mu.Unlock()

	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}

// Refresh obtains a fresh pair for a request that was rejected while using
// the access token stale. Concurrent callers rejected with the same token
// share one exchange and its outcome. If the stored access token already differs from stale, it is
// returned without exchanging. With nothing stored there is no session to
// renew and ErrSessionEnded is returned. On a failed exchange the credentials
// are cleared and terminate is called once for the whole cycle.
//
// The exchange is detached from ctx: a caller that gives up gets ctx.Err()
// while the exchange still completes for everybody else.
func (s *State) Refresh(ctx context.Context, stale string, exchange ExchangeFunc, terminate TerminateFunc) (Credentials, error) {
	ch := s.flight.DoChan(stale, func() (any, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.refreshTimeout)
		defer cancel()
		return s.refresh(rctx, stale, exchange, terminate)
	})

	select {
	case <-ctx.Done():
		return Credentials{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Credentials{}, res.Err
		}
		return res.Val.(Credentials), nil
	}
}

func (s *State) refresh(ctx context.Context, stale string, exchange ExchangeFunc, terminate TerminateFunc) (Credentials, error) {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	current, err := s.Reload(ctx)
	if err != nil {
		s.log.Warn("credential store unavailable, using cached pair", zap.Error(err))
		s.mu.RLock()
		current = s.creds
		s.mu.RUnlock()
	}

	if current.IsZero() {
		return Credentials{}, ErrSessionEnded
	}
	if current.AccessToken != stale {
		s.log.Debug("access token already rotated, skipping exchange")
		return current, nil
	}

	next, err := s.exchange(ctx, current, exchange)
	if err != nil {
		if cerr := s.Clear(ctx); cerr != nil {
			s.log.Warn("failed to clear credentials after refresh failure", zap.Error(cerr))
		}
		if terminate != nil {
			terminate(ctx, err)
		}
		return Credentials{}, err
	}

	if err := s.Replace(ctx, next); err != nil {
		s.log.Warn("refreshed credentials kept in memory only", zap.Error(err))
	}
	return next, nil
}

func (s *State) exchange(ctx context.Context, current Credentials, exchange ExchangeFunc) (Credentials, error) {
	if current.RefreshToken == "" {
		return Credentials{}, ErrNoRefreshToken
	}

	next, err := exchange(ctx, current.RefreshToken)
	if err != nil {
		return Credentials{}, err
	}
	if next.AccessToken == "" {
		return Credentials{}, errors.New("refresh response carried no access token")
	}
	if next.RefreshToken == "" {
		next.RefreshToken = current.RefreshToken
	}
	return next, nil
}
