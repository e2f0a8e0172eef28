package meta

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"

	"rememfile/pkg/types"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// -----------------------------------------------------------------------------
// 通用辅助函数 (Helpers)
// -----------------------------------------------------------------------------

// mockHash 生成合法的测试用 Hash
func mockHash(input string) types.Hash {
	sum := sha256.Sum256([]byte(input))
	return types.Hash(hex.EncodeToString(sum[:]))
}

// setupTestRepo 构建隔离的测试环境 (每个测试一个独立的内存库)
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	db := NewWithConn(conn)
	require.NoError(t, db.AutoMigrate(&HashEntry{}, &Metadata{}))
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db)
}

// mustPut 强制写入，失败则终止
func mustPut(t *testing.T, repo *Repository, path string, hash types.Hash, msgAndArgs ...any) {
	t.Helper()
	err := repo.Put(context.Background(), path, hash)
	require.NoError(t, err, msgAndArgs...)
}
