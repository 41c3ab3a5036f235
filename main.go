package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/CaffeineGargoyle/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Caffeine Gargoyle"), kong.Description("CaffeineGargoyle is a personal caffeine intake tracker."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
