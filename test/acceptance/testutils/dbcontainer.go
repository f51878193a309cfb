package testutils

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// The maintenance database is named after the user so that connection
	// strings may leave the database out, which db-url requires.
	dbUser     = "morty"
	dbPassword = "wubba-lubba-dub-dub"
	dbName     = dbUser

	defaultPostgresImage = "docker.io/postgres:14-alpine"
	// MORTY_TEST_POSTGRES_IMAGE swaps the image, e.g. to test a newer server.
	postgresImageVar = "MORTY_TEST_POSTGRES_IMAGE"

	startupTimeout = 5 * time.Minute
)

var postgresPort = nat.Port("5432/tcp")

type DBServer struct {
	container        *postgres.PostgresContainer
	ConnectionString string
}

func postgresImage() string {
	if image := os.Getenv(postgresImageVar); image != "" {
		return image
	}
	return defaultPostgresImage
}

func serverConnectionString(host string, port nat.Port) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", dbUser, dbPassword, host, port.Port(), dbName)
}

// StartDBServer runs a throwaway Postgres. The returned connection string
// names no database; DBClient creates the ones it needs.
func StartDBServer(ctx context.Context) (server DBServer, err error) {
	timeout := startupTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage(postgresImage()),
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategyAndDeadline(timeout, wait.ForSQL(postgresPort, "pgx", serverConnectionString)),
	)
	if err != nil {
		err = fmt.Errorf("failed to start %s: %w", postgresImage(), err)
		return
	}

	endpoint, err := container.PortEndpoint(ctx, postgresPort, "")
	if err != nil {
		err = fmt.Errorf("failed to resolve postgres endpoint: %w", err)
		return
	}
	server = DBServer{
		container:        container,
		ConnectionString: fmt.Sprintf("postgres://%s:%s@%s/?sslmode=disable", dbUser, dbPassword, endpoint),
	}
	return
}

func (server DBServer) Terminate(ctx context.Context) error {
	return server.container.Terminate(ctx)
}
