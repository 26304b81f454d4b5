package headers

import (
	"fmt"

	"github.com/vvka-141/umbrella/pkg/umbrella"
)

// Reconcile sorts both lists lexicographically and computes their multiset
// symmetric difference. It is order-independent: permuting either input does
// not change the result.
//
// An empty static list is a fatal configuration error; the scan result may
// legitimately be empty only when the static list is too, which the empty
// check already rejects.
func Reconcile(staticList, scannedList umbrella.IncludeList) (umbrella.ReconcileResult, error) {
	if len(staticList) == 0 {
		return umbrella.ReconcileResult{}, fmt.Errorf("static include list: %w", umbrella.ErrEmptyContent)
	}

	counts := make(map[umbrella.IncludeDirective]int, len(staticList))
	for _, d := range staticList {
		counts[d]++
	}
	for _, d := range scannedList {
		counts[d]--
	}

	var result umbrella.ReconcileResult
	for d, n := range counts {
		for ; n > 0; n-- {
			result.ExtraInStatic = append(result.ExtraInStatic, d)
		}
		for ; n < 0; n++ {
			result.ExtraInScanned = append(result.ExtraInScanned, d)
		}
	}

	result.ExtraInStatic = result.ExtraInStatic.Sorted()
	result.ExtraInScanned = result.ExtraInScanned.Sorted()

	return result, nil
}
