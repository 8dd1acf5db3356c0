// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"log"

	"github.com/battlegrid/bf42con/cerrs"
	"github.com/battlegrid/bf42con/internal/diag"
	"github.com/battlegrid/bf42con/internal/script"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var argsScripts struct {
	level         string
	constantsPath string
	out           string
}

var cmdScripts = &cobra.Command{
	Use:   "scripts <base>",
	Short: "read every .con script under a level's Objects tree and dump the world",
	Long:  `Recursively read every script under <base>/Objects, plus the named level's Init, Conquest, and StaticObjects scripts, into one WorldData, link it, and dump the result as JSON.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := args[0]
		if ok, err := isdir(base); err != nil {
			return err
		} else if !ok {
			return cerrs.ErrInvalidInputPath
		}

		constantsPath := effectiveConstantsPath(argsScripts.constantsPath)
		data, err := script.ReadAll(base, argsScripts.level, constantsPath,
			!globalConfig.Diagnostics.LogDispatchErrors, !globalConfig.Diagnostics.LogIOFailures,
			diag.Default())
		if err != nil {
			return err
		}

		log.Printf("scripts: %s templates, %s geometries, %s instances (%s static)\n",
			humanize.Comma(int64(len(data.Templates))),
			humanize.Comma(int64(len(data.Geometries))),
			humanize.Comma(int64(len(data.Instances))),
			humanize.Comma(int64(len(data.StaticInstances))))

		if err := checkUnresolved(data); err != nil {
			return err
		}

		return dumpWorldData(data, argsScripts.out)
	},
}
