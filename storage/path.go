package storage

import (
	"chat-circle/errors"
	"fmt"
	"strings"
)

const (
	docPrefix  = "doc/"
	pathSep    = "/"
	maxSegment = 256
)

func segments(path string) ([]string, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: empty path", errors.ErrInvalidPath)
	}
	parts := strings.Split(path, pathSep)
	for _, p := range parts {
		if p == "" || len(p) > maxSegment {
			return nil, fmt.Errorf("%w: %q", errors.ErrInvalidPath, path)
		}
	}
	return parts, nil
}

// validateCollection accepts "users" or "chats/u1_u2/messages".
func validateCollection(path string) error {
	parts, err := segments(path)
	if err != nil {
		return err
	}
	if len(parts)%2 != 1 {
		return fmt.Errorf("%w: %q is not a collection", errors.ErrInvalidPath, path)
	}
	return nil
}

// validateDocument accepts "users/u1" or "chats/u1_u2/messages/m1".
func validateDocument(path string) error {
	parts, err := segments(path)
	if err != nil {
		return err
	}
	if len(parts)%2 != 0 {
		return fmt.Errorf("%w: %q is not a document", errors.ErrInvalidPath, path)
	}
	return nil
}

// Join builds a path from its segments.
func Join(segments ...string) string {
	return strings.Join(segments, pathSep)
}

// Split returns the parent collection and the id of a document path.
func Split(docPath string) (collection, id string) {
	i := strings.LastIndex(docPath, pathSep)
	if i < 0 {
		return "", docPath
	}
	return docPath[:i], docPath[i+1:]
}

func docKey(docPath string) []byte {
	return []byte(docPrefix + docPath)
}

func collectionPrefix(collection string) []byte {
	return []byte(docPrefix + collection + pathSep)
}

// directChild reports whether key belongs to the collection itself
// and not to one of its sub-collections.
func directChild(key []byte, prefix []byte) bool {
	return !strings.Contains(string(key[len(prefix):]), pathSep)
}
