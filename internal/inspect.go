package internal

import (
	"chat-circle/storage"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

//go:embed inspect.html
var templatesFS embed.FS

const (
	documentPrefix = "doc/"
	maxInspectRows = 500
)

type InspectRow struct {
	Key    string
	Path   string
	Size   int
	Fields []InspectField
}

type InspectField struct {
	Name  string
	Value string
}

type StatsProvider func() map[string]any

type PageData struct {
	Prefix    string
	Items     []InspectRow
	Truncated bool
	Stats     map[string]any
}

// InspectHandler renders the documents stored under a key prefix, read-only.
func InspectHandler(db *badger.DB, statsProvider StatsProvider) http.Handler {
	tmpl := template.Must(template.ParseFS(templatesFS, "inspect.html"))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		prefix := r.URL.Query().Get("prefix")
		if prefix == "" {
			prefix = documentPrefix + "users/"
		}

		data := PageData{
			Prefix: prefix,
			Stats:  make(map[string]any),
		}
		if statsProvider != nil {
			data.Stats = statsProvider()
		}

		err := db.View(func(txn *badger.Txn) error {
			it := txn.NewIterator(badger.DefaultIteratorOptions)
			defer it.Close()
			for it.Seek([]byte(prefix)); it.ValidForPrefix([]byte(prefix)); it.Next() {
				if len(data.Items) == maxInspectRows {
					data.Truncated = true
					return nil
				}
				item := it.Item()
				key := string(item.KeyCopy(nil))
				err := item.Value(func(val []byte) error {
					data.Items = append(data.Items, DocumentMapper(key, val))
					return nil
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = tmpl.Execute(w, data)
	})
}

// DocumentMapper decodes a stored document; other keys only show their size.
func DocumentMapper(key string, val []byte) InspectRow {
	row := InspectRow{Key: key, Size: len(val)}
	if !strings.HasPrefix(key, documentPrefix) {
		return row
	}
	row.Path = strings.TrimPrefix(key, documentPrefix)
	fields, err := storage.UnmarshalFields(val)
	if err != nil {
		return row
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		row.Fields = append(row.Fields, InspectField{Name: name, Value: fmt.Sprint(fields[name])})
	}
	return row
}
