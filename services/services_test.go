package services_test

import (
	"chat-circle/mocks"
	"testing"

	"go.uber.org/mock/gomock"
)

// pngHeader is enough for content sniffing.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type repos struct {
	accounts    *mocks.MockIAccountRepository
	users       *mocks.MockIUserRepository
	revocations *mocks.MockIRevocationRepository
	groups      *mocks.MockIGroupRepository
	messages    *mocks.MockIMessageRepository
	unread      *mocks.MockIUnreadRepository
	blobs       *mocks.MockIBlobStore
}

func newRepos(t *testing.T) repos {
	ctrl := gomock.NewController(t)
	return repos{
		accounts:    mocks.NewMockIAccountRepository(ctrl),
		users:       mocks.NewMockIUserRepository(ctrl),
		revocations: mocks.NewMockIRevocationRepository(ctrl),
		groups:      mocks.NewMockIGroupRepository(ctrl),
		messages:    mocks.NewMockIMessageRepository(ctrl),
		unread:      mocks.NewMockIUnreadRepository(ctrl),
		blobs:       mocks.NewMockIBlobStore(ctrl),
	}
}
