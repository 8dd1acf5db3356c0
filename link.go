// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"os"

	"github.com/battlegrid/bf42con/cerrs"
	"github.com/battlegrid/bf42con/internal/serialize"
	"github.com/spf13/cobra"
)

var argsLink struct {
	in  string
	out string
}

var cmdLink = &cobra.Command{
	Use:   "link",
	Short: "run the linking pass over a WorldData JSON document and re-dump it",
	Long:  `Load a WorldData JSON document and run Link() again, resolving any references left unresolved by a prior partial read. Linking is idempotent, so running it against an already-linked document is a no-op.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if argsLink.in == "" {
			return cerrs.ErrInvalidInputPath
		}
		blob, err := os.ReadFile(argsLink.in)
		if err != nil {
			return err
		}
		data, err := serialize.Load(blob)
		if err != nil {
			return err
		}
		data.Link()
		if err := checkUnresolved(data); err != nil {
			return err
		}
		return dumpWorldData(data, argsLink.out)
	},
}
