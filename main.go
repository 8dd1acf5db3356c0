// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package main implements the bf42con command line interface: a parser
// and interpreter for the Battlefield 1942 .con game-script dialect and
// the world model it builds.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/maloquacious/semver"
	"github.com/spf13/cobra"

	"github.com/battlegrid/bf42con/cerrs"
	"github.com/battlegrid/bf42con/internal/config"
	"github.com/battlegrid/bf42con/internal/diag"
	"github.com/battlegrid/bf42con/internal/script"
	"github.com/battlegrid/bf42con/internal/store"
)

var (
	version = semver.Version{
		Major: 0,
		Minor: 1,
		Patch: 0,
		Build: semver.Commit(),
	}
	globalConfig *config.Config
)

func main() {
	for _, arg := range os.Args {
		if arg == "-show-version" || arg == "--show-version" {
			fmt.Printf("%s\n", version.Short())
			return
		} else if arg == "-build-info" || arg == "--build-info" {
			fmt.Printf("%s\n", version.String())
			return
		}
	}
	log.SetFlags(log.Lshortfile | log.Ltime)

	const configFileName = "bf42con.json"
	debugConfigFile := false
	if sb, err := os.Stat(configFileName); err == nil && sb.Mode().IsRegular() {
		debugConfigFile = true
	}
	cfg, err := config.Load(configFileName, debugConfigFile)
	if err != nil && debugConfigFile {
		log.Printf("[config] %q: %v\n", configFileName, err)
	}
	globalConfig = cfg

	if err := Execute(); err != nil {
		log.Fatal(err)
	}
}

func Execute() error {
	cmdRoot.PersistentFlags().BoolVar(&argsRoot.showVersion, "show-version", false, "show version")
	cmdRoot.PersistentFlags().StringVar(&argsRoot.logFile.name, "log-file", "", "set log file")

	cmdRoot.AddCommand(cmdRead)
	cmdRead.Flags().StringVar(&argsRead.constantsPath, "constants", "", "path to a constants.txt file to load before reading")
	cmdRead.Flags().StringVar(&argsRead.out, "out", "-", "path to write the JSON document to (- for stdout)")

	cmdRoot.AddCommand(cmdScripts)
	cmdScripts.Flags().StringVar(&argsScripts.level, "level", "", "level name to additionally read Init/Conquest/StaticObjects from")
	cmdScripts.Flags().StringVar(&argsScripts.constantsPath, "constants", "", "path to a constants.txt file to load before reading")
	cmdScripts.Flags().StringVar(&argsScripts.out, "out", "-", "path to write the JSON document to (- for stdout)")

	cmdRoot.AddCommand(cmdLink)
	cmdLink.Flags().StringVar(&argsLink.in, "in", "", "path to the JSON document to link")
	cmdLink.Flags().StringVar(&argsLink.out, "out", "-", "path to write the linked JSON document to (- for stdout)")

	cmdRoot.AddCommand(cmdWalk)
	cmdWalk.Flags().StringVar(&argsWalk.in, "in", "", "path to the JSON document to walk")

	cmdRoot.AddCommand(cmdDump)
	cmdDump.Flags().StringVar(&argsDump.in, "in", "", "path to the JSON document to convert")
	cmdDump.Flags().StringVar(&argsDump.sqlite, "sqlite", "", "path to the SQLite database to create")
	cmdDump.Flags().BoolVar(&argsDump.force, "force", false, "overwrite the SQLite database if it exists")

	cmdRoot.AddCommand(cmdLoad)
	cmdLoad.Flags().StringVar(&argsLoad.sqlite, "sqlite", "", "path to the SQLite database to open")
	cmdLoad.Flags().StringVar(&argsLoad.out, "out", "-", "path to write the JSON document to (- for stdout)")

	cmdRoot.AddCommand(cmdWriteStatic)
	cmdWriteStatic.Flags().StringVar(&argsWriteStatic.in, "in", "", "path to the JSON document to read static instances from")
	cmdWriteStatic.Flags().StringVar(&argsWriteStatic.out, "out", "-", "path to write the .con script to (- for stdout)")

	cmdRoot.AddCommand(cmdVersion)

	if globalConfig == nil {
		globalConfig = config.Default()
	}

	return cmdRoot.Execute()
}

var argsRoot struct {
	logFile struct {
		name string
		fd   *os.File
	}
	showVersion bool
}

var cmdRoot = &cobra.Command{
	Use:   "bf42con",
	Short: "Root command for the bf42con interpreter",
	Long:  `Parse Battlefield 1942 .con game scripts into a linked world model.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.name != "" {
			fd, err := os.OpenFile(argsRoot.logFile.name, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
			if err != nil {
				return err
			}
			argsRoot.logFile.fd = fd
			log.SetOutput(argsRoot.logFile.fd)
			argsRoot.showVersion = true
		}
		if argsRoot.showVersion {
			log.Printf("version: %s\n", version)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if argsRoot.logFile.fd != nil {
			if err := log.Output(2, "log file closed"); err != nil {
				return err
			} else if err := argsRoot.logFile.fd.Close(); err != nil {
				return err
			}
		}
		return nil
	},
}

func abspath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	} else if sb, err := os.Stat(absPath); err != nil {
		return "", err
	} else if !sb.IsDir() {
		return "", cerrs.ErrInvalidPath
	}
	return absPath, nil
}

func isdir(path string) (bool, error) {
	sb, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return sb.IsDir(), nil
}

// applyDiagConfig sets r's suppress flags from globalConfig.Diagnostics,
// the way the teacher's own commands read gcfg.DebugFlags before acting.
func applyDiagConfig(r *script.Reader) {
	r.SuppressDispatchErrors = !globalConfig.Diagnostics.LogDispatchErrors
	r.SuppressIOFailures = !globalConfig.Diagnostics.LogIOFailures
}

// walkSink returns the Sink a scene-graph walk should log to, honoring
// globalConfig.Diagnostics.LogDispatchErrors (walk.Walk treats a nil
// Sink as "suppress warnings").
func walkSink() diag.Sink {
	if !globalConfig.Diagnostics.LogDispatchErrors {
		return nil
	}
	return diag.Default()
}

// effectiveConstantsPath resolves a --constants flag against
// globalConfig.ConstantsPath, the flag winning when both are set.
func effectiveConstantsPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return globalConfig.ConstantsPath
}

// checkUnresolved reports any reference left unresolved by Link() and,
// per globalConfig.Diagnostics.WarnUnresolvedAsError, either treats it as
// a warning or fails the command.
func checkUnresolved(data *store.WorldData) error {
	unresolved := data.UnresolvedReferences()
	if len(unresolved) == 0 {
		return nil
	}
	for _, line := range unresolved {
		log.Printf("unresolved: %s\n", line)
	}
	if globalConfig.Diagnostics.WarnUnresolvedAsError {
		return cerrs.ErrUnresolvedReference
	}
	return nil
}

func isfile(path string) (bool, error) {
	sb, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	} else if sb.IsDir() || !sb.Mode().IsRegular() {
		return false, nil
	}
	return true, nil
}
