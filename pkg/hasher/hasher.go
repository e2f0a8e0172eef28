package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"rememfile/pkg/types"
)

// ChunkSize 每次读取的块大小
const ChunkSize = 4096

// ErrReadFailure 统一的"读取失败"信号 (文件不存在、无权限、不是普通文件...)
var ErrReadFailure = errors.New("file cannot be read")

// Hasher 以流式方式计算文件内容的 SHA-256
type Hasher struct {
	chunkSize int
}

func New() *Hasher {
	return &Hasher{chunkSize: ChunkSize}
}

// Digest 返回文件内容的 Hex 摘要
// 任何 I/O 错误都包装为 ErrReadFailure，不产生部分摘要
func (h *Hasher) Digest(path string) (types.Hash, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadFailure, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadFailure, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %s is not a regular file", ErrReadFailure, path)
	}

	return h.DigestReader(f)
}

// DigestReader 对任意流计算摘要，按 chunkSize 分块喂给累加器
func (h *Hasher) DigestReader(r io.Reader) (types.Hash, error) {
	digest := sha256.New()
	buf := make([]byte, h.chunkSize)
	if _, err := io.CopyBuffer(digest, onlyReader{r}, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadFailure, err)
	}
	return types.Hash(hex.EncodeToString(digest.Sum(nil))), nil
}

// onlyReader 屏蔽 *os.File 的 WriterTo，保证 CopyBuffer 真的使用我们的缓冲区
type onlyReader struct {
	io.Reader
}
