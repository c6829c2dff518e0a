package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/abyssdigger/pplog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	count   int
	workers int
)

func main() {
	v := viper.New()
	rootCmd := &cobra.Command{
		Use:   "pplog",
		Short: "Writes sample lines at every level through the pplog facade",
		Long: "Writes sample lines at every level through the pplog facade.\n" +
			"Every flag can also be set as a PPLOG_* environment variable.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v)
		},
	}

	flags := rootCmd.Flags()
	flags.String("sink", pplog.SINK_ENHANCED, "sink kind: console, ansi, enhanced, file, rotating, composite, zap, null")
	flags.String("level", "debug", "minimal level: debug, info, warn(ing), error, fatal")
	flags.String("color", pplog.COLOR_AUTO, "color mode: auto, always, never")
	flags.String("file", "", "log file for file, rotating and composite sinks")
	flags.Int("rotate.max_size_mb", 0, "rotate the log file past this size (rotating sink)")
	flags.Int("rotate.max_backups", 0, "rotated files to keep, 0 keeps all (rotating sink)")
	flags.IntVar(&count, "count", 1, "sample rounds per worker")
	flags.IntVar(&workers, "workers", 1, "goroutines logging concurrently")
	if err := v.BindPFlags(flags); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(v *viper.Viper) error {
	cfg, err := pplog.LoadConfig(v)
	if err != nil {
		return err
	}
	sink, err := cfg.Build(nil)
	if err != nil {
		return err
	}
	pplog.SetSink(sink)
	defer pplog.Shutdown()

	pplog.Infof("sink %s (%s), level %s, %d worker(s) x %d round(s)",
		cfg.Sink, pplog.CapsOf(sink), cfg.Level, workers, count)

	var wg sync.WaitGroup
	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 1; i <= count; i++ {
				pplog.Debugf("worker %d round %d: debug details", id, i)
				pplog.Infof("worker %d round %d: something happened", id, i)
				pplog.Warningf("worker %d round %d: disk at %d%%", id, i, 90)
				pplog.Errorf("worker %d round %d: request failed: %v", id, i, os.ErrDeadlineExceeded)
				pplog.Fatalf("worker %d round %d: unrecoverable, but still running", id, i)
			}
		}(w)
	}
	wg.Wait()
	return nil
}
