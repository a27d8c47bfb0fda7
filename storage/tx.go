package storage

import (
	"chat-circle/errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type ChangeKind string

const (
	Created ChangeKind = "created"
	Updated ChangeKind = "updated"
	Deleted ChangeKind = "deleted"
)

// Change describes one committed document write.
type Change struct {
	Kind   ChangeKind
	Path   string
	Fields Fields
}

// Tx is a read-write view of the store bound to one Badger transaction.
// Reads observe the transaction's own pending writes.
type Tx struct {
	txn     *badger.Txn
	changes []Change
}

func (t *Tx) Get(docPath string) (Document, bool, error) {
	if err := validateDocument(docPath); err != nil {
		return Document{}, false, err
	}
	item, err := t.txn.Get(docKey(docPath))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Document{}, false, nil
	}
	if err != nil {
		return Document{}, false, err
	}
	doc, err := toDocument(item)
	if err != nil {
		return Document{}, false, err
	}
	return doc, true, nil
}

func (t *Tx) Query(collection string, q Query) ([]Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}
	q, err := q.normalized()
	if err != nil {
		return nil, err
	}
	prefix := collectionPrefix(collection)
	it := t.txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	var docs []Document
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		if !directChild(item.Key(), prefix) {
			continue
		}
		doc, err := toDocument(item)
		if err != nil {
			return nil, err
		}
		if q.matches(doc) {
			docs = append(docs, doc)
		}
	}
	return q.apply(docs), nil
}

// Create adds a document with a generated id to the collection.
func (t *Tx) Create(collection string, fields Fields) (string, error) {
	if err := validateCollection(collection); err != nil {
		return "", err
	}
	id := uuid.NewString()
	docPath := Join(collection, id)
	normalized, err := normalizeFields(fields)
	if err != nil {
		return "", err
	}
	if err = t.put(docPath, normalized); err != nil {
		return "", err
	}
	t.changes = append(t.changes, Change{Kind: Created, Path: docPath, Fields: normalized})
	return id, nil
}

// Set replaces the whole document, creating it when absent.
func (t *Tx) Set(docPath string, fields Fields) error {
	if err := validateDocument(docPath); err != nil {
		return err
	}
	_, existed, err := t.Get(docPath)
	if err != nil {
		return err
	}
	normalized, err := normalizeFields(fields)
	if err != nil {
		return err
	}
	if err = t.put(docPath, normalized); err != nil {
		return err
	}
	kind := Created
	if existed {
		kind = Updated
	}
	t.changes = append(t.changes, Change{Kind: kind, Path: docPath, Fields: normalized})
	return nil
}

// Update merges deltas into an existing document.
func (t *Tx) Update(docPath string, deltas Fields) error {
	current, ok, err := t.Get(docPath)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrDocumentNotFound, docPath)
	}
	merged, err := applyDeltas(current.Fields, deltas)
	if err != nil {
		return err
	}
	if err = t.put(docPath, merged); err != nil {
		return err
	}
	t.changes = append(t.changes, Change{Kind: Updated, Path: docPath, Fields: merged})
	return nil
}

// Upsert merges deltas, starting from an empty document when absent.
func (t *Tx) Upsert(docPath string, deltas Fields) error {
	current, existed, err := t.Get(docPath)
	if err != nil {
		return err
	}
	merged, err := applyDeltas(current.Fields, deltas)
	if err != nil {
		return err
	}
	if err = t.put(docPath, merged); err != nil {
		return err
	}
	kind := Created
	if existed {
		kind = Updated
	}
	t.changes = append(t.changes, Change{Kind: kind, Path: docPath, Fields: merged})
	return nil
}

// Delete removes the document only; sub-collections are left untouched.
func (t *Tx) Delete(docPath string) error {
	_, ok, err := t.Get(docPath)
	if err != nil || !ok {
		return err
	}
	if err = t.txn.Delete(docKey(docPath)); err != nil {
		return err
	}
	t.changes = append(t.changes, Change{Kind: Deleted, Path: docPath})
	return nil
}

func (t *Tx) put(docPath string, fields Fields) error {
	data, err := MarshalFields(fields)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return t.txn.Set(docKey(docPath), data)
}

func toDocument(item *badger.Item) (Document, error) {
	docPath := string(item.Key()[len(docPrefix):])
	_, id := Split(docPath)
	var fields Fields
	err := item.Value(func(val []byte) error {
		var err error
		fields, err = UnmarshalFields(val)
		return err
	})
	if err != nil {
		return Document{}, err
	}
	return Document{ID: id, Path: docPath, Fields: fields}, nil
}
