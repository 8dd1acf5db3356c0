// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"os"

	"github.com/battlegrid/bf42con/cerrs"
	"github.com/battlegrid/bf42con/internal/serialize"
	"github.com/battlegrid/bf42con/internal/writer"
	"github.com/spf13/cobra"
)

var argsWriteStatic struct {
	in  string
	out string
}

var cmdWriteStatic = &cobra.Command{
	Use:   "write-static",
	Short: "write a WorldData's static instances back out as a .con script",
	Long:  `Load a WorldData JSON document and emit its static instances as the object.create/absolutePosition/rotation block format described for StaticObjects.con.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if argsWriteStatic.in == "" {
			return cerrs.ErrInvalidInputPath
		}
		blob, err := os.ReadFile(argsWriteStatic.in)
		if err != nil {
			return err
		}
		data, err := serialize.Load(blob)
		if err != nil {
			return err
		}

		var out *os.File
		if argsWriteStatic.out == "" || argsWriteStatic.out == "-" {
			out = os.Stdout
		} else {
			out, err = os.Create(argsWriteStatic.out)
			if err != nil {
				return err
			}
			defer out.Close()
		}

		return writer.WriteStatic(out, data.StaticInstances, walkSink())
	},
}
