package push

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sidkik/ironscribe/pkg/config"
	"github.com/sidkik/ironscribe/pkg/errors"
	syncClient "github.com/sidkik/ironscribe/pkg/sync/client"
)

func TestMergeFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		cfg    config.ClientConfig
		exp    config.ClientConfig
		expErr bool
	}{
		{
			name: "Config file values are kept without flags",
			cfg:  config.Default().Client,
			exp:  config.Default().Client,
		},
		{
			name: "Flags override the config file",
			args: []string{"--block-size", "64KB",
				"--workers", "2", "--exclude", "*.tmp", "--digest", "blake2b"},
			cfg: config.ClientConfig{
				Address:   "books:9000",
				BlockSize: config.ByteSize(4096),
				Workers:   8,
				Exclude:   []string{".git"},
			},
			exp: config.ClientConfig{
				Address:   "books:9000",
				Digest:    "blake2b",
				BlockSize: config.ByteSize(64 * 1024),
				Workers:   2,
				Exclude:   []string{".git", "*.tmp"},
			},
		},
		{
			name:   "Invalid block size",
			args:   []string{"--block-size", "lots"},
			cfg:    config.Default().Client,
			expErr: true,
		},
		{
			name:   "Block size too large",
			args:   []string{"--block-size", "1GB"},
			cfg:    config.Default().Client,
			expErr: true,
		},
		{
			name:   "No workers",
			args:   []string{"--workers", "0"},
			cfg:    config.Default().Client,
			expErr: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			cmd := New()
			require.NoError(t, cmd.Flags().Parse(test.args))

			var flags flagValues
			flags.digest, _ = cmd.Flags().GetString("digest")
			flags.blockSize, _ = cmd.Flags().GetString("block-size")
			flags.workers, _ = cmd.Flags().GetInt("workers")
			flags.exclude, _ = cmd.Flags().GetStringSlice("exclude")

			cfg := test.cfg
			err := mergeFlags(cmd, &cfg, flags)
			if test.expErr {
				assert.Error(t, err)
				_, ok := errors.RootCause(err).(errors.FriendlyError)
				assert.True(t, ok, "expected a friendly error, got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.exp, cfg)
		})
	}
}

func TestSummarize(t *testing.T) {
	msg := summarize(syncClient.PushStats{
		Unchanged: 3,
		Patched:   1,
		Uploaded:  2,
		BytesSent: 2048,
	})
	assert.Equal(t, "Pushed 6 files (1 patched, 2 uploaded, 3 already synced). Sent 2.0 kB.", msg)

	msg = summarize(syncClient.PushStats{Skipped: 1})
	assert.Contains(t, msg, "1 files changed during the push")
}
