// Copyright © 2020 Elias Norberg
// Licensed under the GPLv3 or later.
// See COPYING at the root of the repository for details.

// Package telegram posts plain-text run summaries to a Telegram chat.
package telegram

import (
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// NotifyError means the chat endpoint was unreachable or rejected
// the message. It is never fatal to a run.
type NotifyError struct {
	Err error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("telegram: %v", e.Err)
}

func (e *NotifyError) Unwrap() error {
	return e.Err
}

// Sender posts a single chat message. It is implemented by the
// Telegram bot API client.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier sends messages to one fixed chat
type Notifier struct {
	bot    Sender
	chatID int64
}

// New authenticates against the Telegram bot API with the given token
func New(token, chatID string) (*Notifier, error) {
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, &NotifyError{Err: fmt.Errorf("invalid chat id %q: %w", chatID, err)}
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, &NotifyError{Err: err}
	}
	return NewWithSender(bot, id), nil
}

// NewWithSender wraps an existing bot client
func NewWithSender(bot Sender, chatID int64) *Notifier {
	return &Notifier{bot: bot, chatID: chatID}
}

// Notify posts the given text to the configured chat
func (n *Notifier) Notify(text string) error {
	_, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, text))
	if err != nil {
		return &NotifyError{Err: err}
	}
	return nil
}
