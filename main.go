package main

import (
	"os"

	"github.com/IrineSistiana/dnscodec/app"
	_ "github.com/IrineSistiana/dnscodec/app/codec"
	"github.com/IrineSistiana/dnscodec/internal/mlog"
)

var (
	version = "dev/unknown"
)

func main() {
	rootCmd := app.RootCmd()
	rootCmd.Version = version
	err := rootCmd.Execute()
	mlog.Sync()
	if err != nil {
		os.Exit(1)
	}
}
