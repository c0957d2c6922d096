// Copyright © 2020 Elias Norberg
// Licensed under the GPLv3 or later.
// See COPYING at the root of the repository for details.
package imap

import (
	"crypto/tls"
	"fmt"
	"time"

	uidplus "github.com/emersion/go-imap-uidplus"
	"github.com/emersion/go-imap/client"
)

// commandTimeout bounds every IMAP round trip so a stuck server
// cannot hang the whole run
const commandTimeout = 30 * time.Second

// ConnectionError means the server could not be reached at all
type ConnectionError struct {
	Addr string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to %s: %v", e.Addr, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// AuthError means the server rejected the supplied credentials
type AuthError struct {
	User string
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login failed for %s: %v", e.User, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// FetchError means a message reference was stale or invalid
type FetchError struct {
	Ref string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("cannot fetch message %s: %v", e.Ref, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type imapClient struct {
	*client.Client
	*uidplus.UidPlusClient
}

// Handler wraps a single authenticated IMAP session with INBOX selected.
// Message references handed out by Search are only valid for the lifetime
// of the session.
type Handler struct {
	addr   string
	client *imapClient
}

// Open connects to the IMAP server over TLS on the standard encrypted port,
// logs in and selects INBOX
func Open(server, user, password string) (*Handler, error) {
	addr := fmt.Sprintf("%s:993", server)
	tlsConfig := &tls.Config{ServerName: server}

	c, err := client.DialTLS(addr, tlsConfig)
	if err != nil {
		return nil, &ConnectionError{Addr: addr, Err: err}
	}
	c.Timeout = commandTimeout

	err = c.Login(user, password)
	if err != nil {
		_ = c.Logout()
		return nil, &AuthError{User: user, Err: err}
	}

	_, err = c.Select("INBOX", false)
	if err != nil {
		_ = c.Logout()
		return nil, &ConnectionError{Addr: addr, Err: err}
	}

	h := Handler{
		addr: addr,
		client: &imapClient{
			c,
			uidplus.NewClient(c),
		},
	}
	return &h, nil
}

// Close logs out and terminates the session
func (h *Handler) Close() error {
	return h.client.Logout()
}
