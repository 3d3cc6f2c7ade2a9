package di

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/bakery/internal/app"
	"github.com/polkiloo/bakery/internal/config"
	"github.com/polkiloo/bakery/internal/storage"
	"github.com/polkiloo/bakery/internal/test"
)

type backendStub struct {
	*test.MemoryStore
}

func (backendStub) HealthCheck(context.Context) error {
	return nil
}

func (backendStub) Close() {}

func TestModuleComposesGraphWithReplacements(t *testing.T) {
	cfg := &config.Config{
		RunAddress:      ":0",
		DatabaseURI:     "postgres://stub",
		MenuCacheTTL:    time.Minute,
		CORSOrigins:     []string{"*"},
		LogLevel:        "info",
		ShutdownTimeout: time.Millisecond,
		StoreTimeout:    time.Millisecond,
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	backend := backendStub{MemoryStore: test.NewMemoryStore()}

	var (
		facade *app.BakeryFacade
		engine *gin.Engine
	)
	fxApp := fx.New(
		fx.NopLogger,
		fx.Provide(func() context.Context { return context.Background() }),
		Module(
			fx.Replace(cfg),
			fx.Replace(logger),
			fx.Replace(fx.Annotate(backend, fx.As(new(storage.Backend)))),
		),
		fx.Populate(&facade, &engine),
	)

	if err := fxApp.Err(); err != nil {
		t.Fatalf("fx app returned error: %v", err)
	}
	t.Cleanup(func() { _ = fxApp.Stop(context.Background()) })
	if facade == nil || engine == nil {
		t.Fatal("expected bakery facade and router instances")
	}
	if facade.Driver() != config.DriverPostgres {
		t.Fatalf("expected postgres driver, got %q", facade.Driver())
	}

	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/items", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 from wired router, got %d", resp.Code)
	}
}
