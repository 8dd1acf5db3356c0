// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"os"

	"github.com/battlegrid/bf42con/cerrs"
	"github.com/battlegrid/bf42con/internal/serialize"
	"github.com/battlegrid/bf42con/internal/store/sqlite"
	"github.com/spf13/cobra"
)

var argsDump struct {
	in     string
	sqlite string
	force  bool
}

var cmdDump = &cobra.Command{
	Use:   "dump",
	Short: "convert a WorldData JSON document into a SQLite database",
	Long:  `Load a WorldData JSON document and write it into a new SQLite database using the embedded schema, the alternate persistence backend alongside the JSON document format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if argsDump.in == "" || argsDump.sqlite == "" {
			return cerrs.ErrInvalidOutputPath
		}
		blob, err := os.ReadFile(argsDump.in)
		if err != nil {
			return err
		}
		data, err := serialize.Load(blob)
		if err != nil {
			return err
		}
		if err := checkUnresolved(data); err != nil {
			return err
		}

		if argsDump.force {
			_ = os.Remove(argsDump.sqlite)
		}

		s, err := sqlite.Create(context.Background(), argsDump.sqlite)
		if err != nil {
			return err
		}
		defer s.Close()

		return s.Dump(data)
	},
}
