package integration

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/clemPerrousset/sondage-public-elysee/internal/adapters/attestation/devicecheck"
	"github.com/clemPerrousset/sondage-public-elysee/internal/adapters/attestation/playintegrity"
	apphttp "github.com/clemPerrousset/sondage-public-elysee/internal/adapters/handler/http"
	"github.com/clemPerrousset/sondage-public-elysee/internal/adapters/repository/postgres"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/domain"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/ports"
	"github.com/clemPerrousset/sondage-public-elysee/internal/core/services"
)

// TestAdminKey is the shared secret wired into the gate for tests.
const TestAdminKey = "test-admin-key"

type TestApp struct {
	DB        *sql.DB
	Server    *httptest.Server
	Client    *http.Client
	container testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase(dbName),
		tcpostgres.WithUsername(user),
		tcpostgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

// setupTestApp starts a throwaway Postgres, applies the schema and
// serves the fully wired handler. Attestation uses the bypass tokens;
// the iOS verifier carries no credentials, so any non-bypass iOS token
// surfaces the missing-credentials path.
func setupTestApp(t *testing.T) *TestApp {
	t.Helper()
	ctx := context.Background()

	container, connStr, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", connStr)
	require.NoError(t, err)

	err = postgres.ApplyMigrations(db, "../../internal/adapters/repository/postgres/migrations")
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	gate, err := services.NewAdmissionGate(TestAdminKey)
	require.NoError(t, err)

	verifiers := map[string]ports.IntegrityVerifier{
		domain.PlatformAndroid: playintegrity.NewVerifier(),
		domain.PlatformIOS:     devicecheck.NewVerifier(devicecheck.Credentials{}, ""),
	}

	ledgerRepo := postgres.NewLedgerRepository(db)
	tallyRepo := postgres.NewTallyRepository(db)

	handler := apphttp.NewHandler(
		apphttp.NewVoteHandler(services.NewVoteService(ledgerRepo, verifiers, logger)),
		apphttp.NewTallyHandler(services.NewTallyService(tallyRepo)),
		apphttp.NewAdminHandler(services.NewCandidateService(ledgerRepo, logger)),
		gate,
	)

	server := httptest.NewServer(handler)

	return &TestApp{
		DB:        db,
		Server:    server,
		Client:    server.Client(),
		container: container,
	}
}

func (a *TestApp) Teardown(t *testing.T) {
	t.Helper()

	a.Server.Close()
	require.NoError(t, a.DB.Close())
	require.NoError(t, a.container.Terminate(context.Background()))
}
