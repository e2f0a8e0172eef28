package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"rememfile/pkg/app"
	"rememfile/pkg/config"
	"rememfile/pkg/paths"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// ErrUsage 命令行用法错误 (退出码 2)
	ErrUsage = errors.New("usage error")
	// ErrInvalidAction action 缺失或无法识别
	ErrInvalidAction = errors.New("action must be one of '[s]et', '[g]et', '[u]nset', or '[c]lear'")
)

var (
	cfgFile string
	// 全局应用实例，供子命令使用
	RF *app.App
)

var rootCmd = &cobra.Command{
	Use:   "rememfile <action> [files...]",
	Short: "Remember the files at specific paths and compare them later.",
	Long: `Remember the files at specific paths and compare them later.

Actions:
  s or set:   store the hash sums of the given files
  g or get:   retrieve stored file paths that share the same hash sum
  u or unset: remove specific file paths from the database
  c or clear: remove all entries from the database

Relative paths are automatically converted to absolute paths.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	// 没有匹配到任何子命令：action 缺失或未知
	RunE: func(cmd *cobra.Command, args []string) error {
		return reportUsage(cmd, ErrInvalidAction)
	},
	// PersistentPreRunE 会在所有子命令执行前运行
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 根命令只负责报告用法错误，不需要打开数据库
		if cmd == cmd.Root() || cmd.Name() == "help" {
			return nil
		}

		var err error
		RF, err = app.NewApp(context.Background(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return fmt.Errorf("failed to initialize rememfile: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if RF == nil {
			return nil
		}
		err := RF.Close()
		RF = nil
		return err
	},
}

// Execute 是入口
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.rememfile/config.yaml)")
	flags.BoolP("silent", "s", false, "run silently")
	flags.BoolP("show-absolute-paths", "a", false, "show absolute paths")
	flags.BoolP("show-hashes", "H", false, "show hashes")
	flags.BoolP("show-all", "A", false, "show all states (shows only CREATED, UPDATED, HIT, DELETED, FILEERR, ERR by default)")
	flags.BoolP("recursive", "r", false, "recursively choose files below directories")
	flags.BoolP("verbose", "v", false, "run verbosely (print progress to stderr)")

	if err := bindFlags(); err != nil {
		fmt.Println("Failed to bind flag:", err)
		os.Exit(1)
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return reportUsage(cmd, err)
	})
}

// bindFlags 把开关绑定到 Viper，配置文件 / 环境变量可以提供默认值
func bindFlags() error {
	bindings := map[string]string{
		"output.silent":         "silent",
		"output.absolute_paths": "show-absolute-paths",
		"output.hashes":         "show-hashes",
		"output.all":            "show-all",
		"walk.recursive":        "recursive",
		"log.verbose":           "verbose",
	}
	flags := rootCmd.PersistentFlags()
	for key, name := range bindings {
		if err := viper.BindPFlag(key, flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// initConfig 读取配置文件和环境变量
func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, "Config error:", err)
		os.Exit(1)
	}
}

// reportUsage 打印用法和一行错误信息到 stdout，返回 ErrUsage
func reportUsage(cmd *cobra.Command, err error) error {
	out := cmd.OutOrStdout()
	fmt.Fprint(out, cmd.Root().UsageString())
	fmt.Fprintf(out, "%s: error: %s\n", cmd.Root().Name(), err)
	return fmt.Errorf("%w: %w", ErrUsage, err)
}

// targets 把参数解析为绝对路径，必要时递归展开目录
func targets(args []string) ([]paths.Target, error) {
	ts := paths.Targets(RF.Cwd, args)
	if !RF.Recursive {
		return ts, nil
	}
	return paths.Expand(ts)
}
