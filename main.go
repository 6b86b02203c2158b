package main

import (
	"log"

	"carlot/cmd"
	"carlot/config"
)

func main() {
	log.Printf("carlot %s (%s)", config.Version, config.CommitHash)
	cmd.Execute()
}
