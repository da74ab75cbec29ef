package main

import (
	"log"
	"os"

	relay "github.com/viant/odoo-relay"
)

func main() {
	if err := relay.Run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}
