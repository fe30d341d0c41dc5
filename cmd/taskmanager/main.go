package main

import (
	"flag"
	"log"

	"github.com/indigo-web/tinyserve/internal/cli"
	"github.com/indigo-web/tinyserve/site"
)

func main() {
	page := flag.String("file", site.DefaultPage, "page served on / and /task-manager")
	flags := cli.Register(flag.CommandLine, "127.0.0.1:4221", "127.0.0.1:4431")
	flag.Parse()

	app, err := flags.App()
	if err != nil {
		log.Fatal(err)
	}

	r := flags.Router()
	site.Register(r, site.Options{Page: *page})

	if err = cli.Run(app, r); err != nil {
		log.Fatal(err)
	}
}
