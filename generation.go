// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bridge

import "code.hybscloud.com/atomix"

// Generation is a monotonically increasing link identifier. Each
// registered link takes the next value, so a handle issued for an
// earlier link in the same slot no longer matches.
type Generation = uint32

// generations is the global monotonic counter for link generations.
var generations atomix.Uint32

// nextGeneration returns the next generation, skipping zero on wrap so
// that no handle equals the null sentinel.
func nextGeneration() Generation {
	for {
		if g := generations.Add(1); g != 0 {
			return g
		}
	}
}
