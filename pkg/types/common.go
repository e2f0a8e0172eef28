// pkg/types/common.go
package types

import "strings"

// Hash 代表文件内容的 SHA256 Hex String
// 这是一个"值对象"，应当是不可变的。
type Hash string

// HashLen 是 Hex 编码后的长度 (256 bit -> 64 chars)
const HashLen = 64

// SentinelHash 用于展示"无法读取"的占位值，永远不会落库
var SentinelHash = Hash(strings.Repeat("-", HashLen))

func (h Hash) String() string { return string(h) }

// 验证 Hash 合法性
func (h Hash) IsZero() bool     { return h == "" }
func (h Hash) IsValid() bool    { return len(h) == HashLen && h != SentinelHash }
func (h Hash) IsSentinel() bool { return h == SentinelHash }

// State 是一个路径经过一次操作后的结果分类
type State string

const (
	// set
	StateCreated  State = "CREATED"
	StateUpdated  State = "UPDATED"
	StateNoChange State = "NCHANGE"
	StateFileErr  State = "FILEERR"

	// get
	StateHit   State = "HIT"
	StateMiss  State = "N/A"
	StateError State = "ERR"

	// unset
	StateDeleted State = "DELETED"
	StateNoEntry State = "NOENTRY"
)

func (s State) String() string { return string(s) }
