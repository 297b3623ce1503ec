package app

import (
	"fmt"

	"github.com/IrineSistiana/dnscodec/internal/mlog"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"
)

var (
	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "dnscodec",
		Short: "Compose, decode and verify DNS record data",
	}
	logLvl := rootCmd.PersistentFlags().String("log-lvl", "info", "log level [fatal|error|warn|info|debug]")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		lvl, err := zapcore.ParseLevel(*logLvl)
		if err != nil {
			return fmt.Errorf("invalid log lvl [%s]. %w", *logLvl, err)
		}
		mlog.SetLevel(lvl)
		return nil
	}
}

func RootCmd() *cobra.Command {
	return rootCmd
}
