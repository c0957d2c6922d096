// Copyright © 2020 Elias Norberg
// Licensed under the GPLv3 or later.
// See COPYING at the root of the repository for details.
package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/ahlberg/mail-triage/config"
	"github.com/ahlberg/mail-triage/imap"
	"github.com/ahlberg/mail-triage/telegram"
	"github.com/ahlberg/mail-triage/triage"
)

func main() {
	server := flag.String("server", "imap.gmail.com", "IMAP server to connect to")
	credentialsPath := flag.String("credentials", "credentials.yaml", "credentials file")
	deleteListPath := flag.String("delete-list", "delete_email_list.json", "senders whose mail is deleted")
	notifyListPath := flag.String("notify-list", "notify_email_list.json", "senders whose unseen mail is reported")
	attachmentListPath := flag.String("attachment-list", "attachment_senders.json", "senders whose attachments are downloaded (empty to skip)")
	attachmentDir := flag.String("attachment-dir", "./attachments", "directory to save attachments in")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	err := run(*server, *credentialsPath, *deleteListPath, *notifyListPath, *attachmentListPath, *attachmentDir)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(server, credentialsPath, deleteListPath, notifyListPath, attachmentListPath, attachmentDir string) error {
	creds, err := config.LoadCredentials(credentialsPath)
	if err != nil {
		return fmt.Errorf("failed to load credentials: %w", err)
	}

	deleteList, err := config.LoadSenderList(deleteListPath)
	if err != nil {
		return fmt.Errorf("failed to load delete list: %w", err)
	}
	notifyList, err := config.LoadSenderList(notifyListPath)
	if err != nil {
		return fmt.Errorf("failed to load notify list: %w", err)
	}
	var attachmentList []string
	if attachmentListPath != "" {
		attachmentList, err = config.LoadSenderList(attachmentListPath)
		if err != nil {
			return fmt.Errorf("failed to load attachment sender list: %w", err)
		}
	}

	h, err := imap.Open(server, creds.User, creds.Password)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer func() {
		if err := h.Close(); err != nil {
			log.Warnf("failed to close session: %v", err)
		}
	}()

	deleted, err := triage.DeleteMessages(h, deleteList)
	if err != nil {
		return fmt.Errorf("failed to delete emails: %w", err)
	}
	fmt.Println(deleted.Table())

	unseen, err := triage.CollectUnseen(h, notifyList)
	if err != nil {
		return fmt.Errorf("failed to collect emails to notify: %w", err)
	}
	notify(creds, unseen.Text())
	fmt.Println(unseen.Table())

	if attachmentListPath != "" {
		saved, err := triage.DownloadAttachments(h, attachmentList, attachmentDir)
		if err != nil {
			return fmt.Errorf("failed to download attachments: %w", err)
		}
		if len(saved) > 0 {
			fmt.Println(saved.Table())
		}
	}

	return nil
}

// notify posts the stage summary to Telegram. Failures are logged but never
// abort the run, so the attachment stage still executes.
func notify(creds *config.Credentials, text string) {
	n, err := telegram.New(creds.TelegramToken, creds.TelegramChatID)
	if err != nil {
		log.Errorf("failed to send message to Telegram: %v", err)
		return
	}
	err = n.Notify(text)
	if err != nil {
		log.Errorf("failed to send message to Telegram: %v", err)
		return
	}
	log.Info("notification sent to Telegram successfully")
}
