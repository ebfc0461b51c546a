package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/jdhuntington/react-compose/pkg/compose"
)

func setComposerLogger(log zerolog.Logger) {
	compose.SetDefaultLogger(log)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
