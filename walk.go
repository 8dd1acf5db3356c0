// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/battlegrid/bf42con/cerrs"
	"github.com/battlegrid/bf42con/internal/serialize"
	"github.com/battlegrid/bf42con/internal/walk"
	"github.com/spf13/cobra"
)

var argsWalk struct {
	in string
}

var cmdWalk = &cobra.Command{
	Use:   "walk <templateName>",
	Short: "walk a template's scene graph and print its close/far LOD geometry emissions",
	Long:  `Load a WorldData JSON document, find the named object template, and print the geometry files reached by the scene-graph walk, split into close-LOD and far-LOD lists.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if argsWalk.in == "" {
			return cerrs.ErrInvalidInputPath
		}
		blob, err := os.ReadFile(argsWalk.in)
		if err != nil {
			return err
		}
		data, err := serialize.Load(blob)
		if err != nil {
			return err
		}

		tpl, ok := data.GetObjectTemplate(args[0])
		if !ok {
			return fmt.Errorf("walk: template %q not found", args[0])
		}

		res := walk.Walk(tpl, walkSink())
		for _, e := range res.Close {
			fmt.Printf("close %s %s %s\n", e.Geometry.File, e.Position, e.Rotation)
		}
		for _, e := range res.Far {
			fmt.Printf("far   %s %s %s\n", e.Geometry.File, e.Position, e.Rotation)
		}
		return nil
	},
}
