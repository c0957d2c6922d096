package triage

import (
	"bytes"
	"io"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset"
)

// headers returns the decoded From and Subject headers of a raw message
func headers(raw []byte) (from, subject string, err error) {
	entity, err := message.Read(bytes.NewReader(raw))
	if err != nil && !message.IsUnknownCharset(err) {
		return "", "", err
	}

	// Text decodes encoded-word headers; an unknown charset still yields
	// the undecoded value, which is better than dropping the message
	from, _ = entity.Header.Text("From")
	subject, _ = entity.Header.Text("Subject")
	return from, subject, nil
}

type attachmentPart struct {
	Filename string
	Data     []byte
}

// attachments parses a raw message and returns its decoded subject along
// with every leaf MIME part that carries a Content-Disposition header or
// a filename. Parts without a filename get a synthesized one based on
// the message reference.
func attachments(raw []byte, ref string) (subject string, parts []attachmentPart, err error) {
	entity, err := message.Read(bytes.NewReader(raw))
	if err != nil && !message.IsUnknownCharset(err) {
		return "", nil, err
	}
	subject, _ = entity.Header.Text("Subject")

	var walk func(e *message.Entity) error
	walk = func(e *message.Entity) error {
		if mr := e.MultipartReader(); mr != nil {
			for {
				part, err := mr.NextPart()
				if err == io.EOF {
					break
				} else if err != nil && !message.IsUnknownCharset(err) {
					return err
				}
				if part == nil {
					break
				}
				err = walk(part)
				if err != nil {
					return err
				}
			}
			return nil
		}

		disp, dispParams, _ := e.Header.ContentDisposition()
		_, typeParams, _ := e.Header.ContentType()

		filename := dispParams["filename"]
		if filename == "" {
			filename = typeParams["name"]
		}
		if disp == "" && filename == "" {
			// Not an attachment
			return nil
		}
		if filename == "" {
			filename = "attachment_" + ref
		}

		// Body is already transfer-decoded by go-message
		data, err := io.ReadAll(e.Body)
		if err != nil {
			return err
		}

		parts = append(parts, attachmentPart{Filename: filename, Data: data})
		return nil
	}

	err = walk(entity)
	if err != nil {
		return subject, nil, err
	}
	return subject, parts, nil
}
