package printer

import (
	"fmt"
	"io"
	"strings"

	"rememfile/pkg/paths"
	"rememfile/pkg/tracker"
	"rememfile/pkg/types"

	"github.com/fatih/color"
)

// Options 展示开关，对存储状态没有任何影响
type Options struct {
	Silent        bool // 不输出任何内容到 stdout
	AbsolutePaths bool // 展示解析后的绝对路径
	ShowHashes    bool // 在行内展示摘要
	ShowAll       bool // 关闭状态过滤
	Color         bool // 给状态标签着色
}

// Printer 按展示策略输出每个路径的结果
type Printer struct {
	w    io.Writer
	opts Options
}

func New(w io.Writer, opts Options) *Printer {
	return &Printer{w: w, opts: opts}
}

// 默认只展示"有意义"的状态
var interesting = map[types.State]bool{
	types.StateCreated: true,
	types.StateUpdated: true,
	types.StateFileErr: true,
	types.StateHit:     true,
	types.StateError:   true,
	types.StateDeleted: true,
}

// Visible 判断某个状态在当前选项下是否输出
func (p *Printer) Visible(s types.State) bool {
	if p.opts.Silent {
		return false
	}
	return p.opts.ShowAll || interesting[s]
}

// PrintResult 输出 set / unset 的一行: STATE [HASH] PATH
func (p *Printer) PrintResult(t paths.Target, r tracker.Result) {
	if !p.Visible(r.State) {
		return
	}
	fields := p.head(r)
	fields = append(fields, t.Display(p.opts.AbsolutePaths))
	fmt.Fprintln(p.w, strings.Join(fields, " "))
}

// PrintMatches 输出 get 的一行: STATE [HASH] PATH [-> P1,P2]
func (p *Printer) PrintMatches(t paths.Target, r tracker.Result) {
	if !p.Visible(r.State) {
		return
	}
	fields := p.head(r)
	fields = append(fields, t.Display(p.opts.AbsolutePaths))
	if len(r.Matches) > 0 {
		fields = append(fields, "-> "+strings.Join(r.Matches, ","))
	}
	fmt.Fprintln(p.w, strings.Join(fields, " "))
}

// PrintCleared 输出 clear 的汇总
func (p *Printer) PrintCleared(count int64) {
	if p.opts.Silent {
		return
	}
	fmt.Fprintf(p.w, "Successfully deleted %d entries.\n", count)
}

func (p *Printer) head(r tracker.Result) []string {
	fields := []string{p.label(r.State)}
	if p.opts.ShowHashes {
		fields = append(fields, r.Hash.String())
	}
	return fields
}

func (p *Printer) label(s types.State) string {
	if !p.opts.Color {
		return s.String()
	}
	c := stateColor(s)
	c.EnableColor()
	return c.Sprint(s.String())
}

func stateColor(s types.State) *color.Color {
	switch s {
	case types.StateCreated, types.StateUpdated, types.StateHit, types.StateDeleted:
		return color.New(color.FgGreen)
	case types.StateFileErr, types.StateError:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgHiBlack)
	}
}
