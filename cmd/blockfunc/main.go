package main

import (
	"fmt"
	"os"

	"github.com/Pure-Company/blockfunc/internal/log"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	newLogger := func(level log.LogLevel) (*zap.SugaredLogger, error) {
		return log.NewZapLogger(level, isatty.IsTerminal(os.Stderr.Fd()))
	}

	if err := NewCmd(newLogger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
