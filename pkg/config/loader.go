package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/viper"
)

// DefaultStoreName 默认数据库文件名，位于用户主目录下
const DefaultStoreName = ".rememfile.db"

// EnvPrefix 环境变量前缀 (REMEMFILE_STORE_PATH 等)
const EnvPrefix = "REMEMFILE"

// Load 初始化 Viper 配置
// cfgFile: 可选，显式指定的配置文件路径
func Load(cfgFile string) error {
	// 1. 设置默认值 (Defaults)
	if err := setDefaults(); err != nil {
		return err
	}

	// 2. 配置搜索路径
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		// 搜索顺序：
		// 1. ~/.rememfile/config.yaml
		viper.AddConfigPath(filepath.Join(home, ".rememfile"))
		// 2. $XDG_CONFIG_HOME/rememfile/config.yaml
		if xdg, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(xdg, "rememfile"))
		}

		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// 3. 读取环境变量 (REMEMFILE_STORE_PATH, REMEMFILE_OUTPUT_COLOR ...)
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 4. 读取配置文件；找不到不算错，格式错才是错
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("fatal error config file: %w", err)
		}
	}

	return nil
}

func setDefaults() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot locate home directory: %w", err)
	}

	// 存储默认值
	viper.SetDefault("store.path", filepath.Join(home, DefaultStoreName))

	// 输出默认值 (命令行开关会覆盖)
	viper.SetDefault("output.silent", false)
	viper.SetDefault("output.absolute_paths", false)
	viper.SetDefault("output.hashes", false)
	viper.SetDefault("output.all", false)
	viper.SetDefault("output.color", !color.NoColor)
	viper.SetDefault("log.verbose", false)
	viper.SetDefault("walk.recursive", false)
	return nil
}

// StorePath 返回展开 "~" 之后的数据库路径
func StorePath() (string, error) {
	p := viper.GetString("store.path")
	if p == "" {
		return "", fmt.Errorf("store path not set")
	}
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	return p, nil
}
