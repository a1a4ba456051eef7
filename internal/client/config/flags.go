package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/printquote/internal/flagx"
)

var (
	valuedFlags = []string{"-i", "-o", "-d", "-w", "-a", "-t", "-m", "-r", "-j"}
	switchFlags = []string{"-l", "-s", "-v"}
)

// parseFlags populates Config from command-line flags.
//
//	-i string   archive to estimate
//	-o string   report path; the extension picks the format (.csv, .xlsx)
//	-d string   directory holding the estimate history
//	-w int      page-count workers (0 = one per CPU)
//	-a string   quote server address; enables remote mode
//	-t string   access token for the quote server
//	-m int      per-entry size limit in bytes
//	-r int      remote request timeout in seconds
//	-j string   fetch a finished job from the quote server instead of estimating
//	-l          list recent estimates and exit
//	-s          let sibling folders named after USB/CD mark a folder as storage media
//	-v          debug logging
func parseFlags(cfg *Config) {
	args := flagx.Filter(os.Args[1:], valuedFlags, switchFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Archive, "i", cfg.Archive, "archive (.zip) to estimate")
	fs.StringVar(&cfg.Output, "o", cfg.Output, "report path (.csv or .xlsx)")
	fs.StringVar(&cfg.HistoryDir, "d", cfg.HistoryDir, "history directory")
	fs.IntVar(&cfg.Workers, "w", cfg.Workers, "page-count workers")
	fs.StringVar(&cfg.ServerAddr, "a", cfg.ServerAddr, "quote server address")
	fs.StringVar(&cfg.AccessToken, "t", cfg.AccessToken, "quote server access token")
	fs.Int64Var(&cfg.MaxEntryBytes, "m", cfg.MaxEntryBytes, "max archive entry size in bytes")
	fs.StringVar(&cfg.JobID, "j", cfg.JobID, "quote server job id to fetch")
	timeout := fs.Int("r", int(cfg.RequestTimeout.Seconds()), "remote request timeout (in seconds)")
	fs.BoolVar(&cfg.ListHistory, "l", cfg.ListHistory, "list estimate history")
	fs.BoolVar(&cfg.SiblingStorage, "s", cfg.SiblingStorage, "sibling folders may mark storage media")
	fs.BoolVar(&cfg.Debug, "v", cfg.Debug, "debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
