package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

//go:embed version
var version string

//go:embed name
var name string

// sessionSecret is generated once per process when CRM_SESSION_SECRET is not
// set. Cookie sessions signed with it do not survive a restart.
var sessionSecret = uuid.NewString()

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
	logLevel := os.Getenv("CRM_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("CRM_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("CRM_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("CRM_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 8080
	}
	return port
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("CRM_DB_FOLDER")
	if dbFolderPath == "" {
		if IsDebug() {
			return "db"
		}
		return "/etc/nurcrm"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("CRM_LOG_FOLDER")
	if logFolderPath == "" {
		return "/var/log"
	}
	return logFolderPath
}

// GetSessionSecret returns the key used to sign session cookies.
func GetSessionSecret() string {
	if secret := os.Getenv("CRM_SESSION_SECRET"); secret != "" {
		return secret
	}
	return sessionSecret
}

// GetSessionMaxAge returns the session lifetime in minutes.
func GetSessionMaxAge() int {
	maxAge, err := strconv.Atoi(os.Getenv("CRM_SESSION_MAX_AGE"))
	if err != nil || maxAge <= 0 {
		return 60
	}
	return maxAge
}

// GetAdminEmail returns the reserved administrator email. Exactly one
// account carries the admin role and it always uses this email.
func GetAdminEmail() string {
	email := os.Getenv("CRM_ADMIN_EMAIL")
	if email == "" {
		return "admin@nurcom.tel"
	}
	return email
}

// GetAdminBootstrapPassword returns the password assigned to the admin
// account when it is first created.
func GetAdminBootstrapPassword() string {
	password := os.Getenv("CRM_ADMIN_PASSWORD")
	if password == "" {
		return "AdminPower2026!"
	}
	return password
}

// GetDefaultResetPassword returns the fixed password an admin reset assigns
// to a user account.
func GetDefaultResetPassword() string {
	password := os.Getenv("CRM_RESET_PASSWORD")
	if password == "" {
		return "12345678"
	}
	return password
}
