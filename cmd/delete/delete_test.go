package delete

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidkik/ironscribe/pkg/config"
	"github.com/sidkik/ironscribe/pkg/errors"
	"github.com/sidkik/ironscribe/pkg/sync"
	syncClient "github.com/sidkik/ironscribe/pkg/sync/client"
)

type mockClient struct {
	syncClient.Client

	deleteErr error
	deleted   []string
	closed    bool
}

func (c *mockClient) DeleteBook(path string) error {
	c.deleted = append(c.deleted, path)
	return c.deleteErr
}

func (c *mockClient) Close() error {
	c.closed = true
	return nil
}

func TestRun(t *testing.T) {
	tests := []struct {
		name      string
		deleteErr error
		expOutput string
		expErr    bool
	}{
		{
			name:      "Deleted",
			expOutput: "Deleted shelf/book.epub.\n",
		},
		{
			name:      "Missing",
			deleteErr: errors.FileNotFound{Path: "shelf/book.epub"},
			expOutput: "shelf/book.epub doesn't exist. Nothing to do.\n",
		},
		{
			name:      "Failed",
			deleteErr: errors.New("connection reset"),
			expErr:    true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			var out bytes.Buffer
			stdout = &out

			mock := &mockClient{deleteErr: test.deleteErr}
			newClient = func(config.Config, sync.Hasher) (syncClient.Client, error) {
				return mock, nil
			}

			err := run(config.Default(), "shelf/book.epub")
			if test.expErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, test.expOutput, out.String())
			assert.Equal(t, []string{"shelf/book.epub"}, mock.deleted)
			assert.True(t, mock.closed)
		})
	}
}
