package main

import (
	"github.com/sidkik/ironscribe/cmd"
	"github.com/sidkik/ironscribe/cmd/util"
)

func main() {
	defer util.HandlePanic()
	cmd.Execute()
}
