package testutils

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type DBClient struct {
	conn *pgx.Conn
}

type TestDB struct {
	Name             string
	ConnectionString string
}

func NewDBClient(ctx context.Context, connString string) (client *DBClient, err error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		err = fmt.Errorf("failed to connect to database: %w", err)
		return
	}
	client = &DBClient{
		conn: conn,
	}
	return
}

const sourceDBName = "_original"

func (client DBClient) InitializeSourceDB(ctx context.Context, migrator Migrator) (err error) {
	_, err = client.conn.Exec(ctx, fmt.Sprintf(`CREATE DATABASE "%s"`, sourceDBName))
	if err != nil {
		err = fmt.Errorf("failed to create database: %w", err)
		return
	}
	dbConfig := client.conn.Config().Copy()
	dbConfig.Database = sourceDBName
	err = migrator.MigrateTo(ctx, connectionString(dbConfig.Config), "latest")
	if err != nil {
		err = fmt.Errorf("failed to migrate database to latest schema version: %w", err)
	}
	return
}

func (client DBClient) CleanupSourceDB(ctx context.Context) (err error) {
	_, err = client.conn.Exec(ctx, fmt.Sprintf(`DROP DATABASE IF EXISTS "%s"`, sourceDBName))
	if err != nil {
		err = fmt.Errorf("failed to drop source database: %w", err)
	}
	return
}

func (client DBClient) CreateTestDB(ctx context.Context) (testDB TestDB, err error) {
	testDB.Name = GenerateRandomUUID().String()
	config := client.conn.Config().Copy()
	config.Database = testDB.Name
	testDB.ConnectionString = connectionString(config.Config)
	err = client.CleanupTestDB(ctx, testDB.Name)
	if err != nil {
		return
	}
	_, err = client.conn.Exec(ctx, fmt.Sprintf(`CREATE DATABASE "%s" WITH TEMPLATE "%s"`, testDB.Name, sourceDBName))
	if err != nil {
		err = fmt.Errorf("failed to copy database from source: %w", err)
	}
	return
}

func (client DBClient) CleanupTestDB(ctx context.Context, testDBName string) (err error) {
	_, err = client.conn.Exec(ctx, fmt.Sprintf(`DROP DATABASE IF EXISTS "%s"`, testDBName))
	if err != nil {
		err = fmt.Errorf("failed to drop database: %w", err)
	}
	return
}

// ResetTestDB empties every table of the test database. The database itself
// is kept since the API server holds open connections to it.
func (client DBClient) ResetTestDB(ctx context.Context, testDBName string) error {
	config := client.conn.Config().Copy()
	config.Database = testDBName
	conn, err := pgx.ConnectConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to connect to test database: %w", err)
	}
	defer conn.Close(ctx)
	_, err = conn.Exec(ctx, `TRUNCATE saved_characters, characters`)
	if err != nil {
		return fmt.Errorf("failed to truncate test database: %w", err)
	}
	return nil
}

func (client DBClient) Close(ctx context.Context) error {
	return client.conn.Close(ctx)
}
