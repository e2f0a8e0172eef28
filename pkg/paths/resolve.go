// pkg/paths/resolve.go
package paths

import "path/filepath"

// Resolve 把用户输入的路径转换为与调用目录无关的绝对路径
// 纯函数：不访问文件系统，cwd 由调用者提供
func Resolve(cwd, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(cwd, p)
}

// Target 是一个待处理的路径
type Target struct {
	Arg string // 用户给出的原始形式 (用于展示)
	Abs string // 解析后的绝对路径 (存储的 key)
}

// Display 根据开关选择展示哪一种路径
func (t Target) Display(absolute bool) string {
	if absolute {
		return t.Abs
	}
	return t.Arg
}

// Targets 把参数列表逐个解析为 Target，顺序保持不变
func Targets(cwd string, args []string) []Target {
	out := make([]Target, 0, len(args))
	for _, a := range args {
		out = append(out, Target{Arg: a, Abs: Resolve(cwd, a)})
	}
	return out
}
