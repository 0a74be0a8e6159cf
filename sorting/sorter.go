package sorting

import (
	"voyager.com/zonk/logging"
	"voyager.com/zonk/util"
)

var sorterLogger = logging.GetZeroLogger("sorting::sorter", nil)

// Sorter runs whichever strategy is currently set.
type Sorter struct {
	strategy SortStrategy
}

func NewSorter(strategy SortStrategy) *Sorter {
	return &Sorter{strategy: strategy}
}

func (s *Sorter) SetStrategy(strategy SortStrategy) {
	s.strategy = strategy
}

func (s *Sorter) Strategy() SortStrategy {
	return s.strategy
}

func (s *Sorter) Sort(data []int) []int {
	sorterLogger.Debug().Str(logging.StrategyKey, s.strategy.Name()).Int("size", len(data)).Msg("Sorting")
	util.Metrics.SortRun(s.strategy.Name())
	return s.strategy.Sort(data)
}
