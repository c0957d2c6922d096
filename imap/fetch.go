package imap

import (
	"errors"
	"io"
	"strconv"

	"github.com/emersion/go-imap"
)

// Search returns references to all messages in INBOX sent from the given
// address, optionally restricted to messages without the \Seen flag.
// An empty result is not an error.
func (h *Handler) Search(sender string, unseenOnly bool) ([]string, error) {
	criteria := imap.NewSearchCriteria()
	criteria.Header.Add("From", sender)
	if unseenOnly {
		criteria.WithoutFlags = []string{imap.SeenFlag}
	}

	uids, err := h.client.UidSearch(criteria)
	if err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(uids))
	for _, uid := range uids {
		refs = append(refs, strconv.FormatUint(uint64(uid), 10))
	}
	return refs, nil
}

// Fetch downloads the full message (headers, body and attachments)
// for one reference
func (h *Handler) Fetch(ref string) ([]byte, error) {
	uid, err := parseRef(ref)
	if err != nil {
		return nil, &FetchError{Ref: ref, Err: err}
	}

	// Peek, so that the seen-flag is only set explicitly by the caller
	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{section.FetchItem()}
	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uid)

	messages := make(chan *imap.Message, 1)
	done := make(chan error, 1)
	go func() {
		done <- h.client.UidFetch(seqSet, items, messages)
	}()

	msg := <-messages
	if err = <-done; err != nil {
		return nil, &FetchError{Ref: ref, Err: err}
	}
	if msg == nil {
		return nil, &FetchError{Ref: ref, Err: errors.New("server did not return message")}
	}

	r := msg.GetBody(section)
	if r == nil {
		return nil, &FetchError{Ref: ref, Err: errors.New("server did not return message body")}
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &FetchError{Ref: ref, Err: err}
	}
	return data, nil
}

func parseRef(ref string) (uint32, error) {
	uid, err := strconv.ParseUint(ref, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(uid), nil
}
