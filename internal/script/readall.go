// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package script

import (
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/battlegrid/bf42con/internal/diag"
	"github.com/battlegrid/bf42con/internal/store"
)

// ReadAll composes the filesystem walk and the linking pass the way the
// original bf42_readAllConFiles convenience wrapper does: every *.con
// file under <base>/Objects is read into one WorldData, then (when level
// is non-empty) the level's Init.con, Conquest.con, and StaticObjects.con
// are each read with v_arg1 bound to "host" — the last one flagged so
// its instances land in the static subset too — and finally the linking
// pass runs once over the whole result.
//
// constantsPath, when non-empty, is loaded into the WorldData's constant
// table in addition to the constants.txt store.New already attempted
// from the working directory, the way config.ConstantsPath or a
// --constants flag override the default for a batch run whose base
// directory isn't the process's working directory.
//
// suppressDispatchErrors and suppressIOFailures mirror
// config.Diagnostics.LogDispatchErrors/LogIOFailures, gating the
// matching diagnostic category for every Reader this call constructs.
//
// ReadAll does not stop on I/O problems: a walk error on an entry is
// reported to sink (unless suppressIOFailures) and the entry is skipped,
// and a script that cannot be read is reported and treated as empty, as
// ReadFile does everywhere.
func ReadAll(base, level, constantsPath string, suppressDispatchErrors, suppressIOFailures bool, sink diag.Sink) (*store.WorldData, error) {
	data := store.New()
	if constantsPath != "" {
		if err := data.LoadConstants(constantsPath); err != nil && !suppressIOFailures {
			sink.Printf("constants: %s: %v", constantsPath, err)
		}
	}

	root := NewReader(data, sink)
	root.SuppressDispatchErrors = suppressDispatchErrors
	root.SuppressIOFailures = suppressIOFailures

	objectsDir := filepath.Join(base, "Objects")
	err := filepath.WalkDir(objectsDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if !suppressIOFailures {
				sink.Printf("[%s] %s: %v", root.RunID, path, walkErr)
			}
			return nil
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".con") {
			return nil
		}
		return root.ReadFile(path)
	})
	if err != nil {
		return data, err
	}

	if level != "" {
		levelDir := filepath.Join(base, "Bf1942", "Levels", level)

		for _, name := range []string{"Init.con", "Conquest.con"} {
			if err := root.ReadFileWithArgs(filepath.Join(levelDir, name), []string{"host"}); err != nil {
				return data, err
			}
		}
		if err := root.ReadStaticFile(filepath.Join(levelDir, "StaticObjects.con"), []string{"host"}); err != nil {
			return data, err
		}
	}

	data.Link()
	return data, nil
}
