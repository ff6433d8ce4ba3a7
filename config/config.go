// Package config exposes build metadata and environment-driven settings
// for the booklib catalog server.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("BOOKLIB_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("BOOKLIB_DEBUG") == "true"
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("BOOKLIB_DB_FOLDER")
	if dbFolderPath == "" {
		dbFolderPath = "."
	}
	return dbFolderPath
}

// GetDBPath returns the sqlite file path. The file name is fixed to
// users.db so catalogs created by earlier versions keep working.
func GetDBPath() string {
	return fmt.Sprintf("%s/users.db", GetDBFolderPath())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("BOOKLIB_LOG_FOLDER")
	if logFolderPath == "" {
		logFolderPath = "/var/log"
	}
	return logFolderPath
}

func GetListen() string {
	return os.Getenv("BOOKLIB_LISTEN")
}

func GetPort() string {
	port := os.Getenv("BOOKLIB_PORT")
	if port == "" {
		port = "8080"
	}
	return port
}

// GetSessionSecret returns the cookie-store secret, empty when unset.
// The web server generates a volatile one in that case.
func GetSessionSecret() string {
	return os.Getenv("BOOKLIB_SESSION_SECRET")
}
