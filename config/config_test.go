package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
	return path
}

func TestLoadCredentials(t *testing.T) {
	valid := `user: someone@example.com
password: hunter2
telegram_token: 123:abc
telegram_chat_id: "4242"
`

	t.Run("valid", func(t *testing.T) {
		creds, err := LoadCredentials(writeFile(t, "credentials.yaml", valid))
		require.NoError(t, err)
		assert.Equal(t, "someone@example.com", creds.User)
		assert.Equal(t, "hunter2", creds.Password)
		assert.Equal(t, "123:abc", creds.TelegramToken)
		assert.Equal(t, "4242", creds.TelegramChatID)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCredentials(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)

		var cfgErr *Error
		assert.True(t, errors.As(err, &cfgErr))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadCredentials(writeFile(t, "credentials.yaml", "user: [unclosed"))
		require.Error(t, err)

		var cfgErr *Error
		assert.True(t, errors.As(err, &cfgErr))
	})

	missingKey := []struct {
		name    string
		content string
	}{
		{"user", "password: x\ntelegram_token: y\ntelegram_chat_id: \"1\"\n"},
		{"password", "user: x\ntelegram_token: y\ntelegram_chat_id: \"1\"\n"},
		{"telegram_token", "user: x\npassword: y\ntelegram_chat_id: \"1\"\n"},
		{"telegram_chat_id", "user: x\npassword: y\ntelegram_token: z\n"},
	}
	for _, tc := range missingKey {
		t.Run("missing "+tc.name, func(t *testing.T) {
			_, err := LoadCredentials(writeFile(t, "credentials.yaml", tc.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.name)
		})
	}
}

func TestLoadSenderList(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		list, err := LoadSenderList(writeFile(t, "list.json", `{"emails": ["a@x.com", "b@x.com"]}`))
		require.NoError(t, err)
		assert.Equal(t, []string{"a@x.com", "b@x.com"}, list)
	})

	t.Run("empty list is valid", func(t *testing.T) {
		list, err := LoadSenderList(writeFile(t, "list.json", `{"emails": []}`))
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("missing emails key", func(t *testing.T) {
		_, err := LoadSenderList(writeFile(t, "list.json", `{"addresses": []}`))
		require.Error(t, err)

		var cfgErr *Error
		assert.True(t, errors.As(err, &cfgErr))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadSenderList(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := LoadSenderList(writeFile(t, "list.json", `{"emails": [`))
		require.Error(t, err)
	})
}
