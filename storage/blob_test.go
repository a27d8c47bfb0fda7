package storage

import (
	"chat-circle/errors"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

// pngHeader is enough for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

func newTestBlobStore(t *testing.T, maxSize int64) *BlobStore {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewBlobStore(db, slog.Default(), "http://localhost:8080/blobs/", maxSize)
}

func Test_Upload_Then_Get_Blob(t *testing.T) {
	req := require.New(t)
	blobs := newTestBlobStore(t, 0)

	ref, err := blobs.Upload("profilePictures/u1.png", pngHeader)
	req.NoError(err)
	req.Equal("image/png", ref.ContentType)
	req.Equal("http://localhost:8080/blobs/profilePictures/u1.png", ref.URL)
	req.Equal(int64(len(pngHeader)), ref.Size)

	blob, err := blobs.Get("profilePictures/u1.png")
	req.NoError(err)
	req.Equal(ref, blob.BlobRef)
	req.Equal(pngHeader, blob.Data)
}

func Test_Upload_Rejects_Oversized_Blob(t *testing.T) {
	req := require.New(t)
	blobs := newTestBlobStore(t, 8)

	_, err := blobs.Upload("chatMedia/u1_u2/1", pngHeader)
	req.ErrorIs(err, errors.ErrBlobTooLarge)
}

func Test_Delete_Blob(t *testing.T) {
	req := require.New(t)
	blobs := newTestBlobStore(t, 0)
	_, err := blobs.Upload("chatMedia/u1_u2/1", []byte("hello"))
	req.NoError(err)

	req.NoError(blobs.Delete("chatMedia/u1_u2/1"))
	req.NoError(blobs.Delete("chatMedia/u1_u2/1"))

	_, err = blobs.Get("chatMedia/u1_u2/1")
	req.ErrorIs(err, errors.ErrBlobNotFound)
}

func Test_Blob_Path_Is_Validated(t *testing.T) {
	req := require.New(t)
	blobs := newTestBlobStore(t, 0)

	_, err := blobs.Upload("../etc/passwd", []byte("x"))
	req.ErrorIs(err, errors.ErrInvalidPath)
	_, err = blobs.Get("")
	req.ErrorIs(err, errors.ErrInvalidPath)
}
