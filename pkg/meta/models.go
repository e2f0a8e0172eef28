package meta

import "time"

// HashEntry 是一条 (绝对路径 -> 摘要) 记录
// Name 唯一；Hash 上建 B-Tree 索引，支撑"同内容"反查
type HashEntry struct {
	// Name 是主键，文件的绝对路径
	Name string `gorm:"primaryKey;type:text"`

	// Hash 文件内容的 SHA256 Hex
	Hash string `gorm:"index:idx_hashes_hash;type:char(64);not null"`
}

// TableName 强制指定表名
func (HashEntry) TableName() string {
	return "hashes"
}

// Metadata 存储数据库自身的信息 (例如创建时间)
type Metadata struct {
	Key   string `gorm:"primaryKey;type:text"`
	Value string `gorm:"type:text"`
}

func (Metadata) TableName() string {
	return "metadata"
}

const metaKeyCreatedAt = "created_at"

func nowString() string {
	return time.Now().UTC().Format(time.RFC3339)
}
