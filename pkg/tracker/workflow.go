package tracker

import (
	"context"
	"fmt"

	"rememfile/pkg/types"

	"go.uber.org/zap"
)

// Set 记录或更新 path 的摘要
//
//	读取失败       -> FILEERR (不写库)
//	无旧记录       -> CREATED
//	旧摘要不同     -> UPDATED
//	旧摘要相同     -> NCHANGE (不写库)
func (t *Tracker) Set(ctx context.Context, path string) (Result, error) {
	hash, ok := t.digest(path)
	if !ok {
		return Result{State: types.StateFileErr, Hash: hash, Path: path}, nil
	}

	prev, err := t.store.LookupByPath(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to look up %s: %w", path, err)
	}

	state := types.StateCreated
	if prev != nil {
		state = types.StateUpdated
		if types.Hash(prev.Hash) == hash {
			t.log.Debug("hash unchanged, skipping", zap.String("path", path))
			return Result{State: types.StateNoChange, Hash: hash, Path: path}, nil
		}
	}

	t.log.Debug("storing hash", zap.String("path", path), zap.Stringer("hash", hash))
	if err := t.store.Put(ctx, path, hash); err != nil {
		return Result{}, err
	}
	return Result{State: state, Hash: hash, Path: path}, nil
}

// Get 查询与 path 内容相同的已记录路径，只读
// Matches 包含 path 自身 (如果它之前以相同摘要被记录过)
func (t *Tracker) Get(ctx context.Context, path string) (Result, error) {
	hash, ok := t.digest(path)
	if !ok {
		return Result{State: types.StateError, Hash: hash, Path: path}, nil
	}

	matches, err := t.store.LookupByDigest(ctx, hash)
	if err != nil {
		return Result{}, fmt.Errorf("failed to look up hash %s: %w", hash, err)
	}

	state := types.StateMiss
	if len(matches) > 0 {
		state = types.StateHit
	}
	return Result{State: state, Hash: hash, Path: path, Matches: matches}, nil
}

// Unset 按路径删除记录，不计算摘要
func (t *Tracker) Unset(ctx context.Context, path string) (Result, error) {
	prev, err := t.store.LookupByPath(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to look up %s: %w", path, err)
	}
	if prev == nil {
		t.log.Debug("hash not found, skipping", zap.String("path", path))
		return Result{State: types.StateNoEntry, Hash: types.SentinelHash, Path: path}, nil
	}

	t.log.Debug("deleting hash", zap.String("path", path))
	if err := t.store.Remove(ctx, path); err != nil {
		return Result{}, err
	}
	return Result{State: types.StateDeleted, Hash: types.Hash(prev.Hash), Path: path}, nil
}

// Clear 删除所有记录，返回删除前的记录数
func (t *Tracker) Clear(ctx context.Context) (int64, error) {
	t.log.Debug("querying row count")
	count, err := t.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count hashes: %w", err)
	}

	t.log.Debug("deleting all entries", zap.Int64("count", count))
	if _, err := t.store.RemoveAll(ctx); err != nil {
		return 0, err
	}
	return count, nil
}
