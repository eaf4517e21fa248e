// Command helpdesk runs the support ticket API and its maintenance tasks.
//
// Configuration comes from CONFIG_PATH (YAML), the environment and an
// optional ./.env file. Exit codes: 0 = success, 1 = error.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
