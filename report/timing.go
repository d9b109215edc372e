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

package report

import (
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Timing summarizes the engine times of the trials of a point.
type Timing struct {
	Mean   time.Duration
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration
}

// MakeTiming computes the statistics of the given durations. The standard
// deviation of less than two samples is zero.
func MakeTiming(elapsed []time.Duration) Timing {
	if len(elapsed) == 0 {
		return Timing{}
	}
	seconds := make([]float64, len(elapsed))
	res := Timing{Min: elapsed[0], Max: elapsed[0]}
	for i, d := range elapsed {
		seconds[i] = d.Seconds()
		res.Min = min(res.Min, d)
		res.Max = max(res.Max, d)
	}
	mean, std := stat.MeanStdDev(seconds, nil)
	res.Mean = toDuration(mean)
	if !math.IsNaN(std) {
		res.StdDev = toDuration(std)
	}
	return res
}

func toDuration(seconds float64) time.Duration {
	return time.Duration(math.Round(seconds * float64(time.Second)))
}
