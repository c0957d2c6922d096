// Copyright © 2020 Elias Norberg
// Licensed under the GPLv3 or later.
// See COPYING at the root of the repository for details.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Error describes a problem with one of the configuration files
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Credentials holds the mailbox account and Telegram settings used for one run
type Credentials struct {
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	TelegramToken  string `yaml:"telegram_token"`
	TelegramChatID string `yaml:"telegram_chat_id"`
}

// LoadCredentials reads user, password, Telegram token and chat id from a YAML file.
// All four keys must be present and non-empty.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	creds := Credentials{}
	err = yaml.Unmarshal(data, &creds)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	missing := ""
	switch {
	case creds.User == "":
		missing = "user"
	case creds.Password == "":
		missing = "password"
	case creds.TelegramToken == "":
		missing = "telegram_token"
	case creds.TelegramChatID == "":
		missing = "telegram_chat_id"
	}
	if missing != "" {
		return nil, &Error{Path: path, Err: fmt.Errorf("missing key %q", missing)}
	}

	return &creds, nil
}
