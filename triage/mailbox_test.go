package triage

import (
	"fmt"
)

// fakeMessage is one message held by the in-memory mailbox
type fakeMessage struct {
	ref     string
	from    string
	raw     []byte
	seen    bool
	deleted bool
}

// fakeMailbox implements Mailbox in memory for the stage tests
type fakeMailbox struct {
	messages []*fakeMessage
	expunges int
}

func (m *fakeMailbox) Search(sender string, unseenOnly bool) ([]string, error) {
	var refs []string
	for _, msg := range m.messages {
		if msg.from != sender {
			continue
		}
		if unseenOnly && msg.seen {
			continue
		}
		refs = append(refs, msg.ref)
	}
	return refs, nil
}

func (m *fakeMailbox) Fetch(ref string) ([]byte, error) {
	msg := m.find(ref)
	if msg == nil {
		return nil, fmt.Errorf("no such message: %s", ref)
	}
	return msg.raw, nil
}

func (m *fakeMailbox) AddFlag(ref string, flag string) error {
	msg := m.find(ref)
	if msg == nil {
		return fmt.Errorf("no such message: %s", ref)
	}
	switch flag {
	case FlagSeen:
		msg.seen = true
	case FlagDeleted:
		msg.deleted = true
	default:
		return fmt.Errorf("unknown flag: %s", flag)
	}
	return nil
}

func (m *fakeMailbox) Expunge(refs []string) error {
	m.expunges++
	kept := m.messages[:0]
	for _, msg := range m.messages {
		if !msg.deleted {
			kept = append(kept, msg)
		}
	}
	m.messages = kept
	return nil
}

func (m *fakeMailbox) find(ref string) *fakeMessage {
	for _, msg := range m.messages {
		if msg.ref == ref {
			return msg
		}
	}
	return nil
}

// rawMessage builds a minimal RFC 822 message for the tests
func rawMessage(from, subject, body string) []byte {
	return []byte("From: " + from + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"Content-Type: text/plain\r\n" +
		"\r\n" +
		body + "\r\n")
}
