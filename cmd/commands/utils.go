package commands

import (
	"fmt"
	"os"

	"mediacore/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("mediacore error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`mediacore - media pipeline for the CMS

Usage:
  mediacore run       <config.yml>   start the media HTTP service
  mediacore reconcile <config.yml>   print the orphan/unused report
  mediacore repair    <config.yml>   repair orphaned ids from raw storage
  mediacore version                  print version
  mediacore help                     show this help`)
}
