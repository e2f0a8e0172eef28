package tracker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"rememfile/pkg/hasher"
	"rememfile/pkg/meta"
	"rememfile/pkg/types"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SpyStore 组合真正的 Repository，只统计写调用次数
type SpyStore struct {
	*meta.Repository
	putCount    int32
	removeCount int32
}

func (s *SpyStore) Put(ctx context.Context, path string, hash types.Hash) error {
	atomic.AddInt32(&s.putCount, 1)
	return s.Repository.Put(ctx, path, hash)
}

func (s *SpyStore) Remove(ctx context.Context, path string) error {
	atomic.AddInt32(&s.removeCount, 1)
	return s.Repository.Remove(ctx, path)
}

func (s *SpyStore) writes() int32 {
	return atomic.LoadInt32(&s.putCount) + atomic.LoadInt32(&s.removeCount)
}

// setupTracker 内存 SQLite + 真实 Hasher
func setupTracker(t *testing.T, log *zap.Logger) (*Tracker, *SpyStore) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	db := meta.NewWithConn(conn)
	require.NoError(t, db.AutoMigrate(&meta.HashEntry{}, &meta.Metadata{}))
	t.Cleanup(func() { _ = db.Close() })

	spy := &SpyStore{Repository: meta.NewRepository(db)}
	return New(spy, hasher.New(), log), spy
}

// writeFile 在临时目录写入文件并返回绝对路径
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func mustSet(t *testing.T, tr *Tracker, path string) Result {
	t.Helper()
	res, err := tr.Set(context.Background(), path)
	require.NoError(t, err)
	return res
}

func mustGet(t *testing.T, tr *Tracker, path string) Result {
	t.Helper()
	res, err := tr.Get(context.Background(), path)
	require.NoError(t, err)
	return res
}

func mustUnset(t *testing.T, tr *Tracker, path string) Result {
	t.Helper()
	res, err := tr.Unset(context.Background(), path)
	require.NoError(t, err)
	return res
}
