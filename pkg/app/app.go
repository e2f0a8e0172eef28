// pkg/app/app.go
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"rememfile/pkg/config"
	"rememfile/pkg/hasher"
	"rememfile/pkg/logging"
	"rememfile/pkg/meta"
	"rememfile/pkg/printer"
	"rememfile/pkg/tracker"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// App 是整个应用程序的依赖容器
// 每次调用打开一次数据库，处理完所有路径后 Close
type App struct {
	DB         *meta.DB
	Repository *meta.Repository
	Tracker    *tracker.Tracker
	Printer    *printer.Printer
	Log        *zap.Logger

	// Cwd 用于把相对路径解析为绝对路径
	Cwd string
	// Recursive 对目录参数做递归展开
	Recursive bool
}

// NewApp 按 Viper 配置组装整台机器，但不知道具体的 CLI 命令
func NewApp(ctx context.Context, stdout, stderr io.Writer) (*App, error) {
	storePath, err := config.StorePath()
	if err != nil {
		return nil, err
	}

	verbose := viper.GetBool("log.verbose")
	log := logging.New(verbose, stderr)

	log.Info("opening hash database", zap.String("path", storePath))
	db, err := meta.Open(ctx, meta.Config{Path: storePath, Verbose: verbose})
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return Assemble(db, stdout, log, cwd), nil
}

// Assemble 用现成的 DB 组装 App (测试注入内存库时使用)
func Assemble(db *meta.DB, stdout io.Writer, log *zap.Logger, cwd string) *App {
	if log == nil {
		log = zap.NewNop()
	}
	repo := meta.NewRepository(db)
	return &App{
		DB:         db,
		Repository: repo,
		Tracker:    tracker.New(repo, hasher.New(), log),
		Printer:    printer.New(stdout, OutputOptions()),
		Log:        log,
		Cwd:        cwd,
		Recursive:  viper.GetBool("walk.recursive"),
	}
}

// OutputOptions 从 Viper 读取展示开关
func OutputOptions() printer.Options {
	return printer.Options{
		Silent:        viper.GetBool("output.silent"),
		AbsolutePaths: viper.GetBool("output.absolute_paths"),
		ShowHashes:    viper.GetBool("output.hashes"),
		ShowAll:       viper.GetBool("output.all"),
		Color:         viper.GetBool("output.color"),
	}
}

// Close 释放数据库连接并刷新日志
func (a *App) Close() error {
	_ = a.Log.Sync()
	if a.DB == nil {
		return nil
	}
	return a.DB.Close()
}
