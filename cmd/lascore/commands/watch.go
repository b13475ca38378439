package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/petralog/lascore/config"
	"github.com/petralog/lascore/errors"
	"github.com/petralog/lascore/ingest"
	"github.com/petralog/lascore/las"
)

// WatchCmd watches a directory and ingests LAS files as they appear.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and ingest LAS files as they appear",
	Long: `Watch a directory for new LAS files. Each file that parses is
summarized; files that fail to parse are rejected with a warning.
Runs until interrupted.

Examples:
  lascore watch --dir /data/incoming
  lascore watch                      # directory from config (watch.dir)`,
	RunE: runWatch,
}

func init() {
	WatchCmd.Flags().String("dir", "", "Directory to watch (default from config)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = cfg.Watch.Dir
	}
	if dir == "" {
		return errors.New("no watch directory: pass --dir or set watch.dir in config")
	}

	watcher, err := ingest.NewWatcher(ingest.Config{
		Dir:          dir,
		Patterns:     cfg.Watch.Patterns,
		Debounce:     time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
		ParseOptions: cfg.Parser.Options(),
	}, func(path string, doc *las.Document) {
		pterm.Success.Printfln("%s: well %q, %d rows, %d curves",
			path, doc.Well.WellName, doc.RowCount(), len(doc.AvailableCurves()))
	})
	if err != nil {
		return err
	}

	watcher.Start()
	defer watcher.Stop()
	pterm.Info.Printfln("Watching %s (ctrl-c to stop)", dir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	return nil
}
