package testutils

import (
	"context"
	"fmt"
	"os/exec"

	. "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega/gexec"
)

// Migrator drives a built morty-migrate binary.
type Migrator struct {
	BinaryPath string
}

// MigrateTo runs `migrate -to version` against dbURL, where version is
// "latest" or a goose version number.
func (migrator Migrator) MigrateTo(ctx context.Context, dbURL string, version string) error {
	return migrator.run(ctx, dbURL, "migrate", "-to", version)
}

// Status runs the goose status passthrough, which fails when the schema
// table is unreadable.
func (migrator Migrator) Status(ctx context.Context, dbURL string) error {
	return migrator.run(ctx, dbURL, "status")
}

func (migrator Migrator) run(ctx context.Context, dbURL string, args ...string) (err error) {
	cmd := exec.CommandContext(ctx, migrator.BinaryPath, append([]string{"-db-url", dbURL}, args...)...)
	session, err := gexec.Start(cmd, GinkgoWriter, GinkgoWriter)
	if err != nil {
		err = fmt.Errorf("failed to run %s: %w", migrator.BinaryPath, err)
		return
	}
	select {
	case <-session.Exited:
		if code := session.ExitCode(); code != 0 {
			err = fmt.Errorf("%v exited with code %d", args, code)
		}
	case <-ctx.Done():
		session.Kill()
		err = fmt.Errorf("%v cancelled: %w", args, context.Cause(ctx))
	}
	return
}
