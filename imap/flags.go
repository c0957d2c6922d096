package imap

import (
	"github.com/emersion/go-imap"
)

// AddFlag marks a message with a protocol-level flag such as
// \Seen or \Deleted. Setting a flag that is already present is a no-op.
func (h *Handler) AddFlag(ref string, flag string) error {
	uid, err := parseRef(ref)
	if err != nil {
		return &FetchError{Ref: ref, Err: err}
	}

	seqSet := new(imap.SeqSet)
	seqSet.AddNum(uid)

	item := imap.FormatFlagsOp(imap.AddFlags, true)
	return h.client.UidStore(seqSet, item, []interface{}{flag}, nil)
}

// Expunge permanently removes the given messages, which must already carry
// the \Deleted flag. When the server supports the UIDPLUS extension only
// the listed messages are expunged, otherwise every message marked \Deleted
// in the session is removed.
func (h *Handler) Expunge(refs []string) error {
	supported, err := h.client.SupportUidPlus()
	if err != nil {
		return err
	}

	if !supported || len(refs) == 0 {
		return h.client.Expunge(nil)
	}

	seqSet := new(imap.SeqSet)
	for _, ref := range refs {
		uid, err := parseRef(ref)
		if err != nil {
			return &FetchError{Ref: ref, Err: err}
		}
		seqSet.AddNum(uid)
	}
	return h.client.UidExpunge(seqSet, nil)
}
