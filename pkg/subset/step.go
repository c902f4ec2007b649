package subset

import "fmt"

// ConversionStep records one expansion of the subset construction: the
// source set, the symbol, the target set, and whether the target was
// allocated by this step.
type ConversionStep struct {
	Number   int
	Source   StateSet
	Symbol   string
	Target   StateSet
	NewState bool
}

func (s ConversionStep) String() string {
	marker := ""
	if s.NewState {
		marker = " (new)"
	}
	return fmt.Sprintf("step %d: %s --%s--> %s%s", s.Number, s.Source, s.Symbol, s.Target, marker)
}
