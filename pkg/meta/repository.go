package meta

import (
	"context"
	"errors"
	"fmt"

	"rememfile/pkg/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrMetadataNotFound = errors.New("metadata key not found")

// Repository 封装所有对 hashes / metadata 表的操作
// 每个方法都是一个独立的原子单元，返回前已提交
type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// -----------------------------------------------------------------------------
// 1. 写操作
// -----------------------------------------------------------------------------

// Put 插入或覆盖 path 的记录 (REPLACE INTO 语义，幂等)
func (r *Repository) Put(ctx context.Context, path string, hash types.Hash) error {
	entry := HashEntry{Name: path, Hash: hash.String()}
	err := r.db.GetConn().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"hash"}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to store hash of %s: %w", path, err)
	}
	return nil
}

// Remove 删除 path 的记录；不存在时什么都不做
func (r *Repository) Remove(ctx context.Context, path string) error {
	err := r.db.GetConn().WithContext(ctx).
		Where("name = ?", path).
		Delete(&HashEntry{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete hash of %s: %w", path, err)
	}
	return nil
}

// RemoveAll 清空 hashes 表，返回删除的行数
func (r *Repository) RemoveAll(ctx context.Context) (int64, error) {
	// GORM 默认拒绝无条件 DELETE，这里显式放开
	result := r.db.GetConn().WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&HashEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete all hashes: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// -----------------------------------------------------------------------------
// 2. 查询
// -----------------------------------------------------------------------------

// LookupByPath 返回 path 的已有记录；未命中返回 (nil, nil)
func (r *Repository) LookupByPath(ctx context.Context, path string) (*HashEntry, error) {
	var entry HashEntry
	err := r.db.GetConn().WithContext(ctx).
		Where("name = ?", path).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// LookupByDigest 返回当前映射到 hash 的所有路径 (按路径排序)
// 走 idx_hashes_hash 索引
func (r *Repository) LookupByDigest(ctx context.Context, hash types.Hash) ([]string, error) {
	var names []string
	err := r.db.GetConn().WithContext(ctx).
		Model(&HashEntry{}).
		Where("hash = ?", hash.String()).
		Order("name ASC").
		Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}

// Count 返回记录总数
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetConn().WithContext(ctx).Model(&HashEntry{}).Count(&count).Error
	return count, err
}

// -----------------------------------------------------------------------------
// 3. 元数据
// -----------------------------------------------------------------------------

func (r *Repository) GetMetadata(ctx context.Context, key string) (string, error) {
	var m Metadata
	err := r.db.GetConn().WithContext(ctx).
		Where(&Metadata{Key: key}).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrMetadataNotFound
	}
	if err != nil {
		return "", err
	}
	return m.Value, nil
}

// CreatedAt 返回数据库第一次被创建的时间 (RFC3339)
func (r *Repository) CreatedAt(ctx context.Context) (string, error) {
	return r.GetMetadata(ctx, metaKeyCreatedAt)
}
