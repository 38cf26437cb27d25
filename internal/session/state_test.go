package session

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	MemoryStore
	loadErr error
	saveErr error
}

func (f *failingStore) Load(ctx context.Context) (Credentials, error) {
	if f.loadErr != nil {
		return Credentials{}, f.loadErr
	}
	return f.MemoryStore.Load(ctx)
}

func (f *failingStore) Save(ctx context.Context, creds Credentials) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.MemoryStore.Save(ctx, creds)
}

// gatedStore blocks the first Load until release is closed.
type gatedStore struct {
	*MemoryStore
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (g *gatedStore) Load(ctx context.Context) (Credentials, error) {
	first := false
	g.once.Do(func() { first = true })
	if first {
		close(g.entered)
		<-g.release
	}
	return g.MemoryStore.Load(ctx)
}

func TestState_CurrentLoadsOnce(t *testing.T) {
	store := NewMemoryStore(Credentials{AccessToken: "a1", RefreshToken: "r1"})
	state := NewState(store)

	creds, err := state.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a1", creds.AccessToken)

	require.NoError(t, store.Save(context.Background(), Credentials{AccessToken: "a2", RefreshToken: "r2"}))

	creds, err = state.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a1", creds.AccessToken, "cached pair is served until reload")

	creds, err = state.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a2", creds.AccessToken)
}

func TestState_ReplaceAndClear(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Credentials{})
	state := NewState(store)

	require.NoError(t, state.Replace(ctx, Credentials{AccessToken: "a", RefreshToken: "r"}))
	stored, _ := store.Load(ctx)
	assert.Equal(t, "a", stored.AccessToken)

	require.NoError(t, state.Clear(ctx))
	stored, _ = store.Load(ctx)
	assert.True(t, stored.IsZero())

	current, err := state.Current(ctx)
	require.NoError(t, err)
	assert.True(t, current.IsZero())
}

func TestState_ReplaceKeepsMemoryOnStoreFailure(t *testing.T) {
	store := &failingStore{saveErr: errors.New("disk full")}
	state := NewState(store)

	err := state.Replace(context.Background(), Credentials{AccessToken: "a", RefreshToken: "r"})
	assert.Error(t, err)

	current, err := state.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", current.AccessToken)
}

func TestState_Refresh(t *testing.T) {
	tests := []struct {
		name              string
		stored            Credentials
		stale             string
		exchangeResult    Credentials
		exchangeErr       error
		expected          Credentials
		expectedError     error
		expectedExchanges int32
		expectedTerminate int32
		expectedStored    Credentials
	}{
		{
			name:              "exchanges and stores new pair",
			stored:            Credentials{AccessToken: "old", RefreshToken: "r1"},
			stale:             "old",
			exchangeResult:    Credentials{AccessToken: "new", RefreshToken: "r2"},
			expected:          Credentials{AccessToken: "new", RefreshToken: "r2"},
			expectedExchanges: 1,
			expectedStored:    Credentials{AccessToken: "new", RefreshToken: "r2"},
		},
		{
			name:              "keeps refresh token when response omits it",
			stored:            Credentials{AccessToken: "old", RefreshToken: "r1"},
			stale:             "old",
			exchangeResult:    Credentials{AccessToken: "new"},
			expected:          Credentials{AccessToken: "new", RefreshToken: "r1"},
			expectedExchanges: 1,
			expectedStored:    Credentials{AccessToken: "new", RefreshToken: "r1"},
		},
		{
			name:              "skips exchange when token already rotated",
			stored:            Credentials{AccessToken: "newer", RefreshToken: "r2"},
			stale:             "old",
			expected:          Credentials{AccessToken: "newer", RefreshToken: "r2"},
			expectedExchanges: 0,
			expectedStored:    Credentials{AccessToken: "newer", RefreshToken: "r2"},
		},
		{
			name:              "exchange failure clears and terminates",
			stored:            Credentials{AccessToken: "old", RefreshToken: "r1"},
			stale:             "old",
			exchangeErr:       errors.New("refresh rejected"),
			expectedError:     errors.New("refresh rejected"),
			expectedExchanges: 1,
			expectedTerminate: 1,
		},
		{
			name:              "missing refresh token terminates without exchange",
			stored:            Credentials{AccessToken: "old"},
			stale:             "old",
			expectedError:     ErrNoRefreshToken,
			expectedTerminate: 1,
		},
		{
			name:          "session already ended",
			stored:        Credentials{},
			stale:         "old",
			expectedError: ErrSessionEnded,
		},
		{
			name:              "empty access token in response is a failure",
			stored:            Credentials{AccessToken: "old", RefreshToken: "r1"},
			stale:             "old",
			exchangeResult:    Credentials{RefreshToken: "r2"},
			expectedError:     errors.New("refresh response carried no access token"),
			expectedExchanges: 1,
			expectedTerminate: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewMemoryStore(tt.stored)
			state := NewState(store)

			var exchanges, terminations int32
			exchange := func(_ context.Context, refresh string) (Credentials, error) {
				atomic.AddInt32(&exchanges, 1)
				assert.Equal(t, tt.stored.RefreshToken, refresh)
				return tt.exchangeResult, tt.exchangeErr
			}
			terminate := func(context.Context, error) { atomic.AddInt32(&terminations, 1) }

			creds, err := state.Refresh(ctx, tt.stale, exchange, terminate)

			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, creds)
			}
			assert.Equal(t, tt.expectedExchanges, atomic.LoadInt32(&exchanges))
			assert.Equal(t, tt.expectedTerminate, atomic.LoadInt32(&terminations))

			stored, _ := store.Load(ctx)
			assert.Equal(t, tt.expectedStored, stored)
		})
	}
}

func TestState_RefreshConcurrentCallersShareOneExchange(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Credentials{AccessToken: "old", RefreshToken: "r1"})
	state := NewState(store)

	var exchanges int32
	release := make(chan struct{})
	exchange := func(context.Context, string) (Credentials, error) {
		atomic.AddInt32(&exchanges, 1)
		<-release
		return Credentials{AccessToken: "new", RefreshToken: "r2"}, nil
	}

	const callers = 25
	var wg sync.WaitGroup
	results := make([]Credentials, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = state.Refresh(ctx, "old", exchange, nil)
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&exchanges))
	for i := 0; i < callers; i++ {
		assert.NoError(t, errs[i])
		assert.Equal(t, "new", results[i].AccessToken)
	}
}

func TestState_RefreshConcurrentFailureTerminatesOnce(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(Credentials{AccessToken: "old", RefreshToken: "r1"})
	state := NewState(store)

	var exchanges, terminations int32
	release := make(chan struct{})
	exchange := func(context.Context, string) (Credentials, error) {
		atomic.AddInt32(&exchanges, 1)
		<-release
		return Credentials{}, errors.New("invalid refresh token")
	}
	terminate := func(context.Context, error) { atomic.AddInt32(&terminations, 1) }

	const callers = 10
	var wg sync.WaitGroup
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = state.Refresh(ctx, "old", exchange, terminate)
		}(i)
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&exchanges))
	assert.Equal(t, int32(1), atomic.LoadInt32(&terminations))
	for _, err := range errs {
		assert.Error(t, err)
	}

	stored, _ := store.Load(ctx)
	assert.True(t, stored.IsZero())
}

func TestState_RefreshSurvivesCallerCancellation(t *testing.T) {
	store := NewMemoryStore(Credentials{AccessToken: "old", RefreshToken: "r1"})
	state := NewState(store)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	exchange := func(ctx context.Context, _ string) (Credentials, error) {
		defer close(done)
		close(started)
		<-release
		assert.NoError(t, ctx.Err())
		return Credentials{AccessToken: "new", RefreshToken: "r2"}, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := state.Refresh(ctx, "old", exchange, nil)
		errCh <- err
	}()

	<-started
	cancel()
	assert.ErrorIs(t, <-errCh, context.Canceled)

	close(release)
	<-done

	assert.Eventually(t, func() bool {
		stored, _ := store.Load(context.Background())
		return stored.AccessToken == "new"
	}, time.Second, 5*time.Millisecond)
}

func TestState_RefreshFallsBackToCacheWhenStoreUnavailable(t *testing.T) {
	store := &failingStore{}
	state := NewState(store)
	require.NoError(t, state.Replace(context.Background(), Credentials{AccessToken: "old", RefreshToken: "r1"}))

	store.loadErr = errors.New("connection refused")
	creds, err := state.Refresh(context.Background(), "old", func(context.Context, string) (Credentials, error) {
		return Credentials{AccessToken: "new", RefreshToken: "r2"}, nil
	}, nil)

	require.NoError(t, err)
	assert.Equal(t, "new", creds.AccessToken)
}

func TestState_RefreshDoesNotMergeDifferentStaleTokens(t *testing.T) {
	ctx := context.Background()
	store := &gatedStore{
		MemoryStore: NewMemoryStore(Credentials{AccessToken: "t2", RefreshToken: "r2"}),
		entered:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	state := NewState(store)

	var exchanges int32
	exchange := func(_ context.Context, refresh string) (Credentials, error) {
		atomic.AddInt32(&exchanges, 1)
		assert.Equal(t, "r2", refresh)
		return Credentials{AccessToken: "t3", RefreshToken: "r3"}, nil
	}

	type outcome struct {
		creds Credentials
		err   error
	}
	lateCh := make(chan outcome, 1)
	go func() {
		creds, err := state.Refresh(ctx, "t1", exchange, nil)
		lateCh <- outcome{creds, err}
	}()
	<-store.entered

	currentCh := make(chan outcome, 1)
	go func() {
		creds, err := state.Refresh(ctx, "t2", exchange, nil)
		currentCh <- outcome{creds, err}
	}()

	time.Sleep(20 * time.Millisecond)
	close(store.release)

	late := <-lateCh
	require.NoError(t, late.err)
	assert.Equal(t, "t2", late.creds.AccessToken, "caller rejected with t1 replays with the stored token")

	current := <-currentCh
	require.NoError(t, current.err)
	assert.Equal(t, "t3", current.creds.AccessToken, "caller rejected with t2 must get a new token")

	assert.Equal(t, int32(1), atomic.LoadInt32(&exchanges))
	stored, _ := store.MemoryStore.Load(ctx)
	assert.Equal(t, "t3", stored.AccessToken)
}
