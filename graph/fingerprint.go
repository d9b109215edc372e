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

package graph

import (
	"github.com/sigurn/crc8"
)

var checksumTable = crc8.MakeTable(crc8.CRC8_CDMA2000)

// Fingerprint is a CRC-8 of the binary matrix encoding of g. It is printed
// along with trial results to tell replays of different hosts apart.
func Fingerprint(g *Graph) uint8 {
	return crc8.Checksum([]byte(EncodeBinaryMatrix(g)), checksumTable)
}
