package testutils

import (
	"fmt"
	"net"
	"net/url"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/gomega"
)

func GenerateRandomUUID() uuid.UUID {
	id, err := uuid.NewRandom()
	Expect(err).NotTo(HaveOccurred())
	return id
}

func connectionString(config pgconn.Config) string {
	connectionURL := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(config.User, config.Password),
		Host:   net.JoinHostPort(config.Host, fmt.Sprint(config.Port)),
		Path:   config.Database,
	}
	query := connectionURL.Query()
	if config.TLSConfig == nil {
		query.Set("sslmode", "disable")
	}
	connectionURL.RawQuery = query.Encode()
	return connectionURL.String()
}
