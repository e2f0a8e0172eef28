package paths

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		cwd      string
		input    string
		expected string
	}{
		{"/home/u", "a.txt", "/home/u/a.txt"},
		{"/home/u", "./a/b", "/home/u/a/b"},
		{"/home/u", "a//b", "/home/u/a/b"},
		{"/home/u", "../x", "/home/x"},
		{"/home/u", ".", "/home/u"},
		{"/home/u", "/etc/hosts", "/etc/hosts"},
		{"/home/u", "/etc/../etc/./hosts", "/etc/hosts"},
		{"/", "a", "/a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.cwd, tt.input))
		})
	}
}

func TestResolve_IndependentOfCwd(t *testing.T) {
	// 从不同目录引用同一个文件，得到同一个 key
	assert.Equal(t, Resolve("/data", "x/f"), Resolve("/data/x", "f"))
}

func TestTargets(t *testing.T) {
	got := Targets("/w", []string{"b", "/abs/a", "b"})
	assert.Equal(t, []Target{
		{Arg: "b", Abs: "/w/b"},
		{Arg: "/abs/a", Abs: "/abs/a"},
		{Arg: "b", Abs: "/w/b"},
	}, got, "Order and duplicates are preserved")

	assert.Equal(t, "b", got[0].Display(false))
	assert.Equal(t, "/w/b", got[0].Display(true))
}
