// Package database handles database connections.
//
// It provides a wrapper around GORM (Go Object Relational Mapping) to configure
// MySQL or SQLite connections based on the application's configuration.
//
// # Connect
//
// Connect opens the connection, tunes the pool and pings the server within the
// configured timeout. SQLite is used for local runs and tests (":memory:").
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
