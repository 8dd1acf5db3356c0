// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package main

import (
	"log"
	"os"

	"github.com/battlegrid/bf42con/cerrs"
	"github.com/battlegrid/bf42con/internal/diag"
	"github.com/battlegrid/bf42con/internal/script"
	"github.com/battlegrid/bf42con/internal/serialize"
	"github.com/battlegrid/bf42con/internal/store"
	"github.com/spf13/cobra"
)

var argsRead struct {
	constantsPath string
	out           string
}

var cmdRead = &cobra.Command{
	Use:   "read <file.con>",
	Short: "read a single .con script into a world and dump it as JSON",
	Long:  `Read a single .con script into a fresh WorldData, link it, and dump the result as the four-part JSON document.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if ok, err := isfile(path); err != nil {
			return err
		} else if !ok {
			return cerrs.ErrInvalidInputPath
		}

		data := store.New()
		if constantsPath := effectiveConstantsPath(argsRead.constantsPath); constantsPath != "" {
			if err := data.LoadConstants(constantsPath); err != nil {
				log.Printf("read: constants: %v\n", err)
			}
		}

		reader := script.NewReader(data, diag.Default())
		applyDiagConfig(reader)
		if err := reader.ReadFile(path); err != nil {
			return err
		}
		data.Link()
		if err := checkUnresolved(data); err != nil {
			return err
		}

		return dumpWorldData(data, argsRead.out)
	},
}

func dumpWorldData(data *store.WorldData, out string) error {
	blob, err := serialize.Dump(data)
	if err != nil {
		return err
	}
	if out == "" || out == "-" {
		_, err := os.Stdout.Write(append(blob, '\n'))
		return err
	}
	return os.WriteFile(out, blob, 0644)
}
