package main

import (
	"fmt"

	cli "gopkg.in/urfave/cli.v1"
)

const version = "1.0.0"

func versionAction(*cli.Context) {
	fmt.Println("landsat-archive version", version)
}
