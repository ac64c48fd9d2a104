package main

import (
	"os"

	"canary-service/commands"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
