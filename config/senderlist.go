package config

import (
	"encoding/json"
	"errors"
	"os"
)

// senderListFile matches the on-disk layout of the sender list documents
type senderListFile struct {
	Emails *[]string `json:"emails"`
}

// LoadSenderList reads a list of sender addresses from a JSON document
// of the form {"emails": ["a@example.com", ...]}.
// An empty list is valid, a missing "emails" key is not.
func LoadSenderList(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}

	list := senderListFile{}
	err = json.Unmarshal(data, &list)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	if list.Emails == nil {
		return nil, &Error{Path: path, Err: errors.New(`missing key "emails"`)}
	}

	return *list.Emails, nil
}
