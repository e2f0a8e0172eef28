package main

import (
	"errors"
	"log"
	"os"

	"rememfile/cmd/rememfile/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		// 用法错误已经打印过，只需要退出码
		if errors.Is(err, commands.ErrUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}
