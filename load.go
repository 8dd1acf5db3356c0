// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"context"

	"github.com/battlegrid/bf42con/cerrs"
	"github.com/battlegrid/bf42con/internal/store/sqlite"
	"github.com/spf13/cobra"
)

var argsLoad struct {
	sqlite string
	out    string
}

var cmdLoad = &cobra.Command{
	Use:   "load",
	Short: "load a SQLite database and dump it as a WorldData JSON document",
	Long:  `Open an existing SQLite database written by "dump --sqlite" and re-emit it as the four-part JSON document format.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if argsLoad.sqlite == "" {
			return cerrs.ErrInvalidInputPath
		}

		s, err := sqlite.Open(context.Background(), argsLoad.sqlite)
		if err != nil {
			return err
		}
		defer s.Close()

		data, err := s.Load()
		if err != nil {
			return err
		}
		if err := checkUnresolved(data); err != nil {
			return err
		}

		return dumpWorldData(data, argsLoad.out)
	},
}
