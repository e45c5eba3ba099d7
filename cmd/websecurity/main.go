/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/untillpro/goutils/cobrau"
)

//go:embed version
var version string

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"websecurity",
		"HTTP security runtime demo server",
		args,
		ver,
		newServerCmd(),
		newUserAddCmd(),
		newUserDelCmd(),
		newUsersCmd(),
		newTokenCmd(),
	)
	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}
