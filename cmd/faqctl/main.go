package main

import (
	"fmt"
	"os"

	"github.com/yanqian/faqbot/internal/interface/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "faqctl:", err)
		os.Exit(1)
	}
}
