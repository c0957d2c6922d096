package triage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

// DownloadAttachments saves every attachment found in mail from the given
// senders to dir, which is created if it does not exist. Saved files are
// named <ref>_<filename> so that attachments from different messages never
// collide, even when their original filenames do.
//
// A sender with no matching mail, a message that cannot be fetched or
// parsed, and an attachment that cannot be written are all logged and
// skipped; only a failure to create the destination directory aborts
// the stage.
func DownloadAttachments(mbox Mailbox, senders []string, dir string) (AttachmentList, error) {
	err := os.MkdirAll(dir, 0700)
	if err != nil {
		return nil, fmt.Errorf("cannot create attachment directory %s: %w", dir, err)
	}

	var saved AttachmentList
	for _, sender := range senders {
		log.Infof("searching emails from: %s", sender)

		refs, err := mbox.Search(sender, false)
		if err != nil {
			return nil, err
		}
		if len(refs) == 0 {
			log.Warnf("no emails found for sender: %s", sender)
			continue
		}

		progress := progressbar.NewOptions(len(refs), progressbar.OptionSetDescription(sender))
		for _, ref := range refs {
			progress.Add(1)

			raw, err := mbox.Fetch(ref)
			if err != nil {
				log.Warnf("failed to fetch email %s: %v", ref, err)
				continue
			}

			subject, parts, err := attachments(raw, ref)
			if err != nil {
				log.Warnf("failed to parse email %s: %v", ref, err)
				continue
			}
			log.Infof("processing email with subject: %s", subject)

			for _, part := range parts {
				// Message reference prefix keeps filenames unique across the run
				filename := ref + "_" + filepath.Base(part.Filename)
				path := filepath.Join(dir, filename)

				err = os.WriteFile(path, part.Data, 0644)
				if err != nil {
					log.Warnf("failed to save attachment %s: %v", part.Filename, err)
					continue
				}
				log.Infof("saved attachment: %s", path)

				saved = append(saved, AttachmentRecord{Sender: sender, Filename: filename})
			}
		}
	}

	return saved, nil
}
