package main

import (
	"flag"
	"log"

	"github.com/indigo-web/tinyserve/internal/cli"
	"github.com/indigo-web/tinyserve/todo"
)

func main() {
	escape := flag.Bool("escape", false, "escape HTML in the todo texts")
	flags := cli.Register(flag.CommandLine, "127.0.0.1:4222", "127.0.0.1:4432")
	flag.Parse()

	app, err := flags.App()
	if err != nil {
		log.Fatal(err)
	}

	r := flags.Router()
	todo.Register(r, todo.NewStore(), todo.Options{EscapeHTML: *escape})

	if err = cli.Run(app, r); err != nil {
		log.Fatal(err)
	}
}
