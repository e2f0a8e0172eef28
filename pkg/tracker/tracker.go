package tracker

import (
	"context"

	"rememfile/pkg/meta"
	"rememfile/pkg/types"

	"go.uber.org/zap"
)

// Store 是 Tracker 需要的存储能力 (由 *meta.Repository 实现)
type Store interface {
	Put(ctx context.Context, path string, hash types.Hash) error
	Remove(ctx context.Context, path string) error
	RemoveAll(ctx context.Context) (int64, error)
	LookupByPath(ctx context.Context, path string) (*meta.HashEntry, error)
	LookupByDigest(ctx context.Context, hash types.Hash) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

// Digester 计算文件摘要 (由 *hasher.Hasher 实现)
type Digester interface {
	Digest(path string) (types.Hash, error)
}

// Tracker 实现 set / get / unset / clear 四个工作流
// 所有路径参数都必须已经是绝对路径
type Tracker struct {
	store  Store
	hasher Digester
	log    *zap.Logger
}

func New(store Store, hasher Digester, log *zap.Logger) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tracker{store: store, hasher: hasher, log: log}
}

// Result 是一个路径经过一次操作后的结果
type Result struct {
	State types.State
	Hash  types.Hash // 失败时为 SentinelHash
	Path  string     // 绝对路径

	// Matches 仅 Get 使用：与 Path 内容相同的已记录路径
	Matches []string
}

// digest 计算摘要；失败时返回 SentinelHash 和 false
func (t *Tracker) digest(path string) (types.Hash, bool) {
	t.log.Debug("calculating hash", zap.String("path", path))
	hash, err := t.hasher.Digest(path)
	if err != nil {
		t.log.Debug("failed to calculate hash", zap.String("path", path), zap.Error(err))
		return types.SentinelHash, false
	}
	t.log.Debug("calculated hash", zap.String("path", path), zap.Stringer("hash", hash))
	return hash, true
}
