package paths

import (
	"io/fs"
	"os"
	"path/filepath"

	"rememfile/pkg/ignore"
)

// Expand 递归展开目录参数
// 普通文件 (以及无法 stat 的路径) 原样保留，让后续的 hash 步骤报告读取失败
// 目录被替换为其下的所有非目录条目 (按字典序)，匹配忽略规则的条目被跳过
func Expand(targets []Target) ([]Target, error) {
	var out []Target
	for _, t := range targets {
		info, err := os.Stat(t.Abs)
		if err != nil || !info.IsDir() {
			out = append(out, t)
			continue
		}

		matcher, err := ignore.NewMatcher(t.Abs)
		if err != nil {
			return nil, err
		}

		walkFn := func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// 权限错误等：交给 hash 步骤报告 FILEERR/ERR
				out = append(out, child(t, path))
				return nil
			}

			rel, relErr := filepath.Rel(t.Abs, path)
			if relErr != nil {
				return relErr
			}
			if rel != "." && matcher.Matches(rel) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			// 目录本身不处理
			if d.IsDir() {
				return nil
			}
			out = append(out, child(t, path))
			return nil
		}

		if err := filepath.WalkDir(t.Abs, walkFn); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// child 为 root 下的 absPath 构造 Target，展示路径沿用用户给出的前缀
func child(root Target, absPath string) Target {
	rel, err := filepath.Rel(root.Abs, absPath)
	if err != nil || rel == "." {
		return Target{Arg: root.Arg, Abs: absPath}
	}
	return Target{Arg: filepath.Join(root.Arg, rel), Abs: absPath}
}
