package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func TestLoggerConfig_LogLevel(t *testing.T) {
	tests := map[string]logger.Level{
		"debug":   logger.DebugLevel,
		"info":    logger.InfoLevel,
		"warn":    logger.WarnLevel,
		"error":   logger.ErrorLevel,
		"unknown": logger.InfoLevel,
	}

	for level, want := range tests {
		assert.Equal(t, want, LoggerConfig{Level: level}.LogLevel(), level)
	}
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{
		Host:     "db",
		Port:     5433,
		User:     "resort",
		Password: "secret",
		Database: "resortdesk",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5433 user=resort password=secret dbname=resortdesk sslmode=disable", p.DSN())
}

func TestAdminConfig_BootstrapInput(t *testing.T) {
	input := AdminConfig{BootstrapUsername: "owner"}.BootstrapInput()
	assert.Equal(t, "owner", input.Username)
	assert.Nil(t, input.TelegramChatID)

	input = AdminConfig{BootstrapUsername: "owner", BootstrapChatID: 555}.BootstrapInput()
	if assert.NotNil(t, input.TelegramChatID) {
		assert.Equal(t, int64(555), *input.TelegramChatID)
	}
}
