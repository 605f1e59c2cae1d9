// rewardctl computes staking rewards from the command line.
//
//	rewardctl calculate --start 2024-01-01 --finish 2024-01-31
//	rewardctl calculate --formula duration_scaled --verbose
//	rewardctl defaults
//	rewardctl scenarios [id]
package main

import (
	"os"
	"time"
)

func main() {
	if err := newRootCmd(time.Now).Execute(); err != nil {
		os.Exit(1)
	}
}
