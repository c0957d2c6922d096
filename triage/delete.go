package triage

import (
	log "github.com/sirupsen/logrus"
)

// DeleteMessages removes all mail from the given senders.
// Every match is flagged \Deleted, and one expunge at the end of the
// stage erases them permanently. Senders with no matching mail still
// produce a record, with a count of zero.
func DeleteMessages(mbox Mailbox, senders []string) (DeletionSummary, error) {
	summary := make(DeletionSummary, 0, len(senders))

	var flagged []string
	for _, sender := range senders {
		refs, err := mbox.Search(sender, false)
		if err != nil {
			return nil, err
		}

		for _, ref := range refs {
			err = mbox.AddFlag(ref, FlagDeleted)
			if err != nil {
				return nil, err
			}
		}
		flagged = append(flagged, refs...)

		summary = append(summary, DeletionRecord{Sender: sender, Count: len(refs)})
	}

	err := mbox.Expunge(flagged)
	if err != nil {
		return nil, err
	}

	log.Infof("deleted %d message(s) from %d sender(s)", len(flagged), len(senders))
	return summary, nil
}
