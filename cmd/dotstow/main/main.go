package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/dotstow/cmd/dotstow"
	"github.com/arthur-debert/dotstow/pkg/style"
)

func main() {
	rootCmd := dotstow.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))
		os.Exit(1)
	}
}
