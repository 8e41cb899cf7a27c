// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-air/benchplot/load"
)

// app carries the state shared by the commands of one invocation.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	log    *zap.Logger

	cfgFile string
	debug   bool

	// loader is used instead of a fresh one when set.
	loader *load.Loader
}

func newApp(out, errOut io.Writer) *app {
	v := viper.New()
	v.SetEnvPrefix("BENCHPLOT")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return &app{v: v, out: out, errOut: errOut, log: zap.NewNop()}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "benchplot",
		Short: "plot and summarise solver benchmark results",
		Long: `benchplot loads solver benchmark results from json files, a results
datastore or bench run directories, keeps the instances solved within
the timeout and draws them as a cactus or a scatter plot.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.log = newLogger(a.errOut, a.debug)
			if a.cfgFile == "" {
				return nil
			}
			a.v.SetConfigFile(a.cfgFile)
			if e := a.v.ReadInConfig(); e != nil {
				return fmt.Errorf("reading config %s: %w", a.cfgFile, e)
			}
			a.log.Debug("config file", zap.String("path", a.v.ConfigFileUsed()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (any format viper reads)")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "debug logging")
	root.AddCommand(newPlotCmd(a), newListCmd(a))
	return root
}

func newLogger(w io.Writer, debug bool) *zap.Logger {
	lvl := zapcore.InfoLevel
	if debug {
		lvl = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl))
}

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if e := newRootCmd(a).Execute(); e != nil {
		fmt.Fprintf(os.Stderr, "benchplot: %s\n", e)
		os.Exit(1)
	}
}
