package backupPush

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Paintersrp/binders/internal/backup"
	"github.com/Paintersrp/binders/internal/config"
	"github.com/Paintersrp/binders/internal/state/statetest"
)

type fakePusher struct {
	cfg  config.BackupConfig
	path string
}

func (f *fakePusher) Push(ctx context.Context, dbPath string) (backup.Object, error) {
	f.path = dbPath
	info, err := os.Stat(dbPath)
	if err != nil {
		return backup.Object{}, err
	}
	return backup.Object{Key: f.cfg.Prefix + "binders-x.sqlite", Size: info.Size()}, nil
}

func stubConnect(t *testing.T) *fakePusher {
	t.Helper()

	fake := &fakePusher{}
	orig := connect
	connect = func(ctx context.Context, cfg config.BackupConfig) (pusher, error) {
		if cfg.Bucket == "" {
			return nil, backup.ErrNoBucket
		}
		fake.cfg = cfg
		return fake, nil
	}
	t.Cleanup(func() { connect = orig })
	return fake
}

func TestPushUploadsStorePath(t *testing.T) {
	s := statetest.New(t)
	fake := stubConnect(t)

	out, err := statetest.Execute(t, Command(s), "--bucket", "choir")
	require.NoError(t, err)

	assert.Equal(t, s.Store.Path(), fake.path)
	assert.Equal(t, "choir", fake.cfg.Bucket)
	assert.Equal(t, "backups/", fake.cfg.Prefix)
	assert.Contains(t, out, "Uploaded backups/binders-x.sqlite to choir")
	assert.Empty(t, s.Config.Backup.Bucket)
}

func TestPushSavesBucket(t *testing.T) {
	s := statetest.New(t)
	stubConnect(t)

	_, err := statetest.Execute(t, Command(s), "--bucket", "choir", "--prefix", "weekly/", "--save")
	require.NoError(t, err)

	reloaded, err := config.Load(s.Home)
	require.NoError(t, err)
	assert.Equal(t, "choir", reloaded.Backup.Bucket)
	assert.Equal(t, "weekly/", reloaded.Backup.Prefix)
}

func TestPushWithoutBucket(t *testing.T) {
	s := statetest.New(t)
	stubConnect(t)

	_, err := statetest.Execute(t, Command(s))
	assert.ErrorIs(t, err, backup.ErrNoBucket)
}
