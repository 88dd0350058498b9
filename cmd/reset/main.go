package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/ReelCasino_Go/internal/database"
)

func main() {
	dropDB := flag.Bool("drop", false, "drop and recreate the whole database instead of re-running migrations")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()
	dbName := os.Getenv("DB_NAME")
	connString := func(name string) string {
		return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_HOST"),
			os.Getenv("DB_PORT"),
			name,
		)
	}

	if *dropDB {
		recreateDatabase(ctx, connString("postgres"), dbName)
	}

	pool, err := database.NewPool(ctx, connString(dbName), database.PoolOptions{MaxConns: 2})
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", dbName, err)
	}
	defer pool.Close()

	if *dropDB {
		err = database.Migrate(ctx, pool)
	} else {
		err = database.Reset(ctx, pool)
	}
	if err != nil {
		log.Fatalf("Failed to reset schema: %v", err)
	}

	log.Printf("Database %s reset successfully.\n", dbName)
}

// recreateDatabase terminates sessions on dbName, drops it and creates it empty
func recreateDatabase(ctx context.Context, serverConnString, dbName string) {
	serverPool, err := database.NewPool(ctx, serverConnString, database.PoolOptions{MaxConns: 2})
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	log.Printf("Terminating existing connections to database %s...\n", dbName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = $1
		AND pid <> pg_backend_pid()
	`, dbName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	ident := pgx.Identifier{dbName}.Sanitize()

	log.Printf("Dropping database %s if it exists...\n", dbName)
	if _, err = serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", dbName)
	if _, err = serverPool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
}
