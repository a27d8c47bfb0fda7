//go:generate go run go.uber.org/mock/mockgen -source=blob.go -destination=../mocks/mock_blob_store.go -package=mocks
package storage

import (
	"chat-circle/errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gabriel-vasile/mimetype"
)

const (
	blobPrefix     = "blob/"
	blobMetaPrefix = "blobmeta/"

	DefaultMaxBlobSize = 10 << 20
)

// BlobRef is the durable reference returned by an upload.
type BlobRef struct {
	Path        string
	URL         string
	ContentType string
	Size        int64
}

// Blob is a stored object with its content.
type Blob struct {
	BlobRef
	Data []byte
}

type IBlobStore interface {
	Upload(blobPath string, data []byte) (BlobRef, error)
	Get(blobPath string) (Blob, error)
	Delete(blobPath string) error
	URL(blobPath string) string
}

// BlobStore keeps binary objects (avatars, chat media) in Badger.
type BlobStore struct {
	db      *badger.DB
	log     *slog.Logger
	baseURL string
	maxSize int64
}

func NewBlobStore(db *badger.DB, log *slog.Logger, baseURL string, maxSize int64) *BlobStore {
	if maxSize <= 0 {
		maxSize = DefaultMaxBlobSize
	}
	return &BlobStore{db: db, log: log, baseURL: strings.TrimRight(baseURL, "/"), maxSize: maxSize}
}

// URL is the public address a client downloads the blob from.
func (b *BlobStore) URL(blobPath string) string {
	return b.baseURL + "/" + blobPath
}

// Detect sniffs the content type of data and its usual file extension.
func Detect(data []byte) (contentType, extension string) {
	m := mimetype.Detect(data)
	return m.String(), m.Extension()
}

// Upload stores data under blobPath, overwriting any previous object.
func (b *BlobStore) Upload(blobPath string, data []byte) (BlobRef, error) {
	if err := validateBlobPath(blobPath); err != nil {
		return BlobRef{}, err
	}
	if len(data) == 0 {
		return BlobRef{}, fmt.Errorf("%w: empty blob", errors.ErrInvalidInput)
	}
	if int64(len(data)) > b.maxSize {
		return BlobRef{}, fmt.Errorf("%w: %d bytes", errors.ErrBlobTooLarge, len(data))
	}
	contentType, _ := Detect(data)
	ref := BlobRef{
		Path:        blobPath,
		URL:         b.URL(blobPath),
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	meta, err := MarshalFields(Fields{
		"contentType": ref.ContentType,
		"size":        float64(ref.Size),
		"uploadedAt":  FormatTime(time.Now()),
	})
	if err != nil {
		return BlobRef{}, err
	}
	err = b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(blobPrefix+blobPath), data); err != nil {
			return err
		}
		return txn.Set([]byte(blobMetaPrefix+blobPath), meta)
	})
	if err != nil {
		return BlobRef{}, fmt.Errorf("%w: %v", errors.ErrWriteFailed, err)
	}
	b.log.Debug("Blob stored", "path", blobPath, "content_type", ref.ContentType, "size", ref.Size)
	return ref, nil
}

func (b *BlobStore) Get(blobPath string) (Blob, error) {
	if err := validateBlobPath(blobPath); err != nil {
		return Blob{}, err
	}
	var blob Blob
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(blobPrefix + blobPath))
		if err != nil {
			return err
		}
		if blob.Data, err = item.ValueCopy(nil); err != nil {
			return err
		}
		metaItem, err := txn.Get([]byte(blobMetaPrefix + blobPath))
		if err != nil {
			return err
		}
		return metaItem.Value(func(val []byte) error {
			meta, err := UnmarshalFields(val)
			if err != nil {
				return err
			}
			doc := Document{Fields: meta}
			blob.ContentType = doc.String("contentType")
			blob.Size = int64(doc.Int("size"))
			return nil
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Blob{}, fmt.Errorf("%w: %s", errors.ErrBlobNotFound, blobPath)
	}
	if err != nil {
		return Blob{}, err
	}
	blob.Path = blobPath
	blob.URL = b.URL(blobPath)
	return blob, nil
}

// Delete removes the blob; deleting an absent blob is not an error.
func (b *BlobStore) Delete(blobPath string) error {
	if err := validateBlobPath(blobPath); err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(blobPrefix + blobPath)); err != nil {
			return err
		}
		return txn.Delete([]byte(blobMetaPrefix + blobPath))
	})
}

func validateBlobPath(blobPath string) error {
	if blobPath == "" || strings.HasPrefix(blobPath, "/") || strings.Contains(blobPath, "..") {
		return fmt.Errorf("%w: %q", errors.ErrInvalidPath, blobPath)
	}
	return nil
}
