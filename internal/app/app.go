package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/BerryBytes/hrctl/internal/apiclient"
	"github.com/BerryBytes/hrctl/internal/auth"
	"github.com/BerryBytes/hrctl/internal/config"
	"github.com/BerryBytes/hrctl/internal/hr"
	"github.com/BerryBytes/hrctl/internal/obs"
	"github.com/BerryBytes/hrctl/internal/session"
	generalutils "github.com/BerryBytes/hrctl/utils/general"
	promptutils "github.com/BerryBytes/hrctl/utils/prompt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const Name = "hrctl"

// SkipSession is a command annotation for commands that run without opening
// the credential store.
const SkipSession = "hrctl/skip-session"

// App carries everything a command needs. Commands receive the same pointer
// at construction time and read the fields when they run, after the root
// command has loaded the configuration and connected the session.
type App struct {
	Version string

	Config   *config.Config
	Log      *zap.Logger
	Registry *prometheus.Registry

	State  *session.State
	Client apiclient.Requester
	Auth   auth.Service
	HR     hr.API

	Prompter promptutils.Prompter
	General  generalutils.GeneralUtilsInterface
	Fs       afero.Fs
	Stderr   io.Writer

	closers    []func() error
	expireOnce sync.Once
}

func New(version string) *App {
	return &App{
		Version:  version,
		Log:      zap.NewNop(),
		Prompter: promptutils.NewPrompt(),
		General:  generalutils.NewGeneralUtilsManager(),
		Fs:       afero.NewOsFs(),
		Stderr:   os.Stderr,
	}
}

// LoadConfig reads the configuration and builds the logger. It is a no-op
// when a configuration is already set.
func (a *App) LoadConfig(path string, flags *pflag.FlagSet) error {
	if a.Config != nil {
		return nil
	}

	cfg, err := config.Load(path, flags)
	if err != nil {
		return err
	}
	a.Config = cfg

	logger, err := obs.NewLogger(obs.LogConfig{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
		App:    Name,
		Ver:    a.Version,
	})
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.Log = logger
	return nil
}

// Connect opens the credential store and builds the client and services on
// top of one shared session. Services that are already set are kept.
func (a *App) Connect(ctx context.Context) error {
	if a.Auth != nil && a.HR != nil && a.Client != nil {
		return nil
	}
	if a.Config == nil {
		return errors.New("configuration not loaded")
	}
	cfg := a.Config

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}

	a.State = session.NewState(store,
		session.WithLogger(a.Log.Named("session")),
		session.WithRefreshTimeout(cfg.Auth.RefreshTimeout),
	)

	if a.Registry == nil {
		a.Registry = prometheus.NewRegistry()
	}

	client, err := apiclient.New(apiclient.Config{
		BaseURL:       cfg.API.BaseURL,
		Timeout:       cfg.API.Timeout,
		RefreshPath:   cfg.Auth.RefreshPath,
		RefreshLeeway: cfg.Auth.RefreshLeeway,
		RateLimit:     cfg.API.RateLimit,
		RateBurst:     cfg.API.RateBurst,
		UserAgent:     apiclient.UserAgent(a.Version),
	}, a.State,
		apiclient.WithLogger(a.Log.Named("api")),
		apiclient.WithMetrics(obs.NewClientMetrics(a.Registry)),
		apiclient.WithTerminateHandler(a.sessionExpired),
	)
	if err != nil {
		return err
	}

	a.Client = client
	a.Auth = auth.NewAuthService(client, client, a.State,
		auth.WithLogger(a.Log.Named("auth")),
		auth.WithOTPSource(a.otpSource()),
	)
	a.HR = hr.NewService(client)
	return nil
}

func (a *App) otpSource() auth.OTPSource {
	if a.Config.Auth.TOTPSecret != "" {
		return &auth.TOTPSource{Secret: a.Config.Auth.TOTPSecret}
	}
	return &auth.PromptOTPSource{Prompter: a.Prompter}
}

func (a *App) openStore(ctx context.Context) (session.Store, error) {
	sc := a.Config.Store

	switch sc.Driver {
	case "memory":
		return session.NewMemoryStore(session.Credentials{}), nil
	case "file":
		return session.NewFileStore(a.Fs, sc.Path, session.WithPassphrase(sc.Passphrase)), nil
	case "redis":
		client, err := session.NewRedisClient(ctx, session.RedisOptions{
			Addr:        sc.Redis.Addr,
			Password:    sc.Redis.Password,
			DB:          sc.Redis.DB,
			MaxAttempts: sc.Redis.MaxAttempts,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		return session.NewRedisStore(client, sc.Redis.Key, sc.Redis.TTL), nil
	case "ssm":
		client, err := session.NewSSMClient(ctx, session.SSMOptions{
			Region:          sc.SSM.Region,
			Profile:         sc.SSM.Profile,
			AccessKeyID:     sc.SSM.AccessKeyID,
			SecretAccessKey: sc.SSM.SecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
		return session.NewSSMStore(client, sc.SSM.Parameter, sc.SSM.KMSKey), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", sc.Driver)
	}
}

// sessionExpired is the termination handler: the session is gone and the
// user has to log in again.
func (a *App) sessionExpired(_ context.Context, cause error) {
	a.expireOnce.Do(func() {
		a.Log.Warn("session terminated", zap.Error(cause))
		fmt.Fprintf(a.Stderr, "session expired, run `%s auth login`\n", Name)
	})
}

// Close flushes metrics and logs and releases store connections.
func (a *App) Close() error {
	var errs []error
	if a.Config != nil && a.Registry != nil {
		if err := obs.WriteTextfile(a.Registry, a.Config.Metrics.Textfile); err != nil {
			errs = append(errs, err)
		}
	}
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	_ = a.Log.Sync()
	return errors.Join(errs...)
}
