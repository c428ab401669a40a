package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"

	"github.com/adriangarcia-real/breakfree-habit-tracker/internal/config"
)

func TestNew(t *testing.T) {
	t.Run("Production logs JSON", func(t *testing.T) {
		var buf bytes.Buffer
		log := newWithOutput(&config.Config{Environment: "production", LogLevel: "info"}, &buf)

		log.WithField("habit_id", "h1").Info("Streak updated")

		assert.Equal(t, "h1", gjson.Get(buf.String(), "habit_id").String())
		assert.Equal(t, "Streak updated", gjson.Get(buf.String(), "msg").String())
	})

	t.Run("Development logs text", func(t *testing.T) {
		var buf bytes.Buffer
		log := newWithOutput(&config.Config{Environment: "development", LogLevel: "debug"}, &buf)

		assert.Equal(t, logrus.DebugLevel, log.GetLevel())
		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("Invalid level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		log := newWithOutput(&config.Config{LogLevel: "chatty"}, &buf)

		assert.Equal(t, logrus.InfoLevel, log.GetLevel())
		assert.Contains(t, buf.String(), "Invalid log level")
	})
}
