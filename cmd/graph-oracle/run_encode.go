// Copyright 2024 Fantom Foundation
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/Fantom-foundation/graph-oracle/graph"
	"github.com/Fantom-foundation/graph-oracle/utils"
	"github.com/urfave/cli/v2"
)

var EncodeCmd = cli.Command{
	Action:    RunEncode,
	Name:      "encode",
	Usage:     "Prints the binary adjacency matrix of an edge-list file",
	ArgsUsage: "<edge-list-file>",
	Flags: []cli.Flag{
		&utils.IngestFlag,
	},
	Description: `
The encode command reads a graph in edge-list format and prints the
row-major binary adjacency matrix passed to the engine as pattern.`,
}

// RunEncode prints the binary matrix of the given file.
func RunEncode(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return fmt.Errorf("encode command requires exactly 1 argument")
	}

	mode, err := graph.ParseIngestMode(ctx.String(utils.IngestFlag.Name))
	if err != nil {
		return err
	}

	data, err := os.ReadFile(ctx.Args().First())
	if err != nil {
		return fmt.Errorf("cannot read graph; %w", err)
	}
	g, err := graph.DecodeEdgeList(string(data), mode)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(ctx.App.Writer, graph.EncodeBinaryMatrix(g))
	return err
}
