// Copyright © 2020 Elias Norberg
// Licensed under the GPLv3 or later.
// See COPYING at the root of the repository for details.

// Package triage implements the three stages of the mailbox triage
// pipeline: deleting mail from blocklisted senders, collecting unseen
// mail from watchlisted senders, and downloading attachments.
package triage

// Standard IMAP flags used by the stages
const (
	FlagSeen    = "\\Seen"
	FlagDeleted = "\\Deleted"
)

// Mailbox is the part of an IMAP session the stages need.
// Message references are opaque strings, valid only for the session
// that produced them.
type Mailbox interface {
	// Search returns references to all messages from the given sender,
	// optionally restricted to messages not yet marked seen
	Search(sender string, unseenOnly bool) ([]string, error)
	// Fetch retrieves the raw message for one reference
	Fetch(ref string) ([]byte, error)
	// AddFlag marks a message with a protocol-level flag
	AddFlag(ref string, flag string) error
	// Expunge permanently removes messages flagged \Deleted
	Expunge(refs []string) error
}

// DeletionRecord is the per-sender result of the deletion stage
type DeletionRecord struct {
	Sender string
	Count  int
}

// DeletionSummary lists one record per blocklisted sender, in input order
type DeletionSummary []DeletionRecord

// NotificationRecord describes one unseen message from a watchlisted sender
type NotificationRecord struct {
	From    string
	Subject string
}

// NotificationSummary lists the unseen messages found, in mailbox return order
type NotificationSummary []NotificationRecord

// AttachmentRecord describes one attachment persisted to disk
type AttachmentRecord struct {
	Sender   string
	Filename string
}

// AttachmentList lists every attachment saved during a run
type AttachmentList []AttachmentRecord
