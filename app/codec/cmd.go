package codec

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/IrineSistiana/dnscodec/app"
	"github.com/IrineSistiana/dnscodec/internal/delaywriter"
	"github.com/IrineSistiana/dnscodec/internal/mlog"
	"github.com/IrineSistiana/dnscodec/internal/rdata"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	app.RootCmd().AddCommand(newEncodeCmd(), newDecodeCmd(), newVerifyCmd())
}

func newEncodeCmd() *cobra.Command {
	var (
		cfgPath    string
		output     string
		compressed bool
		stats      bool
		opts       encodeOpts
	)
	c := &cobra.Command{
		Use:   "encode",
		Short: "Compose records from a yaml file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			logger := mlog.L()
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				logger.Fatal("failed to load config", zap.String("file", cfgPath), zap.Error(err))
			}
			rds, err := buildRecords(cfg)
			if err != nil {
				logger.Fatal("invalid record", zap.Error(err))
			}
			logger.Debug("config file loaded", zap.String("file", cfgPath), zap.Int("records", len(rds)))

			reg := newMetricsReg()
			m := newMetrics()
			if err := m.register(reg); err != nil {
				logger.Fatal("failed to register metrics", zap.Error(err))
			}

			failed := encodeRecords(cmd.OutOrStdout(), logger, rds, opts, m, func(stream []byte) error {
				if len(output) == 0 {
					return nil
				}
				if err := writeStream(output, stream, compressed); err != nil {
					return err
				}
				logger.Info("record stream written", zap.String("file", output), zap.Int("bytes", len(stream)), zap.Bool("s2", compressed))
				return nil
			})

			if stats {
				if err := logMetrics(logger, reg); err != nil {
					logger.Error("failed to gather metrics", zap.Error(err))
				}
			}
			if failed {
				mlog.Sync()
				os.Exit(1)
			}
		},
	}
	c.Flags().StringVarP(&cfgPath, "config", "c", "records.yaml", "path of the records file")
	c.Flags().StringVarP(&output, "output", "o", "", "write a record stream to this file")
	c.Flags().BoolVar(&compressed, "s2", false, "s2 compress the record stream")
	c.Flags().BoolVar(&stats, "stats", false, "log compose stats")
	c.Flags().BoolVar(&opts.canonical, "canonical", false, "compose the canonical form")
	c.Flags().BoolVar(&opts.compress, "compress", false, "compress names where allowed")

	genConfigCmd := &cobra.Command{
		Use:   "gen-config [output]",
		Short: "Generate a records file template",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := mlog.L()
			if len(args) == 0 || args[0] == "stdout" {
				if err := genConfigTemplate(cmd.OutOrStdout()); err != nil {
					logger.Fatal("failed to generate config", zap.Error(err))
				}
				return
			}
			f, err := os.Create(args[0])
			if err != nil {
				logger.Fatal("failed to create config file", zap.Error(err))
			}
			defer f.Close()
			if err := genConfigTemplate(f); err != nil {
				logger.Fatal("failed to generate config", zap.Error(err))
			}
		},
	}
	c.AddCommand(genConfigCmd)
	return c
}

// encodeRecords composes rds into a stream and prints every record. The
// stream is only passed to done if all records were composed. It reports
// whether anything failed.
func encodeRecords(w io.Writer, logger *zap.Logger, rds []rdata.RecordData, opts encodeOpts, m *metrics, done func(stream []byte) error) bool {
	e := newEncoder(opts, m)
	defer e.Close()

	failed := false
	for _, rd := range rds {
		raw, err := e.Encode(rd)
		if err != nil {
			logger.Error(logComposeErr, inlineRecord(rd), zap.Error(err))
			failed = true
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", rd.Rtype(), rd, hex.EncodeToString(raw))
	}
	if failed {
		return true
	}
	if err := done(e.Bytes()); err != nil {
		logger.Error("failed to write record stream", zap.Error(err))
		return true
	}
	return false
}

func newDecodeCmd() *cobra.Command {
	var compressed bool
	c := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode a record stream, - or no file reads stdin",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			logger := mlog.L()
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			stream, err := readStream(path, compressed)
			if err != nil {
				logger.Fatal("failed to read record stream", zap.String("file", path), zap.Error(err))
			}
			w := delaywriter.New(cmd.OutOrStdout(), delaywriter.Opts{BufSize: 64 * 1024})
			err = decodeFrames(stream, func(f frame) error {
				_, err := fmt.Fprintf(w, "%d\t%s\t%s\n", f.off, f.rd.Rtype(), f.rd)
				return err
			})
			if cerr := w.Close(); cerr != nil && err == nil {
				err = cerr
			}
			if err != nil {
				logger.Fatal("failed to decode record stream", zap.Error(err))
			}
		},
	}
	c.Flags().BoolVar(&compressed, "s2", false, "the record stream is s2 compressed")
	return c
}

func newVerifyCmd() *cobra.Command {
	var cfgPath string
	c := &cobra.Command{
		Use:   "verify",
		Short: "Cross-check composed records with miekg/dns",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			logger := mlog.L()
			cfg, err := loadConfig(cfgPath)
			if err != nil {
				logger.Fatal("failed to load config", zap.String("file", cfgPath), zap.Error(err))
			}
			rds, err := buildRecords(cfg)
			if err != nil {
				logger.Fatal("invalid record", zap.Error(err))
			}
			failed := 0
			for _, rd := range rds {
				s, err := verifyRecord(rd)
				if err != nil {
					logger.Error(logVerifyErr, inlineRecord(rd), zap.Error(err))
					failed++
					continue
				}
				logger.Debug("record ok", inlineRecord(rd), zap.String("miekg", s))
			}
			logger.Info("verify done", zap.Int("records", len(rds)), zap.Int("failed", failed))
			if failed > 0 {
				mlog.Sync()
				os.Exit(1)
			}
		},
	}
	c.Flags().StringVarP(&cfgPath, "config", "c", "records.yaml", "path of the records file")
	return c
}
