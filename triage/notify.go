package triage

import (
	log "github.com/sirupsen/logrus"
)

// CollectUnseen finds unseen mail from the given senders, extracts the
// From and Subject headers and marks each message seen so a later run
// will not report it again.
//
// A message whose headers cannot be parsed is logged and skipped; it
// stays unseen so the operator can still find it in the mailbox.
func CollectUnseen(mbox Mailbox, senders []string) (NotificationSummary, error) {
	summary := NotificationSummary{}

	for _, sender := range senders {
		refs, err := mbox.Search(sender, true)
		if err != nil {
			return nil, err
		}

		for _, ref := range refs {
			raw, err := mbox.Fetch(ref)
			if err != nil {
				return nil, err
			}

			from, subject, err := headers(raw)
			if err != nil {
				log.Warnf("skipping message %s from %s: %v", ref, sender, err)
				continue
			}

			err = mbox.AddFlag(ref, FlagSeen)
			if err != nil {
				return nil, err
			}

			summary = append(summary, NotificationRecord{From: from, Subject: subject})
		}
	}

	return summary, nil
}
