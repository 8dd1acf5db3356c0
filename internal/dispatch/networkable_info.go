// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package dispatch

import (
	"fmt"

	"github.com/battlegrid/bf42con/internal/domain"
)

// NetworkableInfoTable builds the dispatch table for one NetworkableInfo.
func NetworkableInfoTable(n *domain.NetworkableInfo) Table {
	tbl := NewTable()

	tbl.Register("basePriority", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "basePriority")
		if err != nil {
			return "", err
		}
		f, err := parseFloat(v)
		if err != nil {
			return "", err
		}
		n.BasePriority = f
		return formatFloat(n.BasePriority), nil
	})
	tbl.Register("isUnique", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "isUnique")
		if err != nil {
			return "", err
		}
		b, err := parseIntBool(v)
		if err != nil {
			return "", err
		}
		n.IsUnique = b
		return formatBool(n.IsUnique), nil
	})
	tbl.Register("predictionMode", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "predictionMode")
		if err != nil {
			return "", err
		}
		mode, ok := domain.ParsePredictionMode(v)
		if !ok {
			return "", fmt.Errorf("unknown prediction mode %q", v)
		}
		n.PredictionMode = mode
		return n.PredictionMode.String(), nil
	})
	tbl.Register("forceNetworkableId", func(args []string) (string, error) {
		v, err := requireArg(args, 0, "forceNetworkableId")
		if err != nil {
			return "", err
		}
		b, err := parseIntBool(v)
		if err != nil {
			return "", err
		}
		n.ForceNetworkableId = b
		return formatBool(n.ForceNetworkableId), nil
	})

	return tbl
}
