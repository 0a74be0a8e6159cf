package sorting

import "strings"

const (
	BubbleSortName = "bubble"
	QuickSortName  = "quick"
)

// SortStrategy sorts integers in non-descending order. Implementations may
// return the input slice itself or a new one, so callers that need the
// original data must pass a copy.
type SortStrategy interface {
	Name() string
	Sort(data []int) []int
}

// BubbleSort sorts in place and returns the slice it was given.
type BubbleSort struct{}

func (BubbleSort) Name() string {
	return BubbleSortName
}

func (BubbleSort) Sort(data []int) []int {
	n := len(data)
	for i := 0; i < n-1; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if data[j] > data[j+1] {
				data[j], data[j+1] = data[j+1], data[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
	return data
}

// QuickSort partitions around the middle element into less, equal and
// greater groups. It never modifies the input; slices shorter than two are
// returned as given.
type QuickSort struct{}

func (QuickSort) Name() string {
	return QuickSortName
}

func (q QuickSort) Sort(data []int) []int {
	if len(data) <= 1 {
		return data
	}
	pivot := data[len(data)/2]
	var less, equal, greater []int
	for _, v := range data {
		switch {
		case v < pivot:
			less = append(less, v)
		case v > pivot:
			greater = append(greater, v)
		default:
			equal = append(equal, v)
		}
	}

	sorted := make([]int, 0, len(data))
	sorted = append(sorted, q.Sort(less)...)
	sorted = append(sorted, equal...)
	sorted = append(sorted, q.Sort(greater)...)
	return sorted
}

var strategies = map[string]SortStrategy{
	BubbleSortName: BubbleSort{},
	QuickSortName:  QuickSort{},
}

func StrategyByName(name string) (SortStrategy, error) {
	strategy, ok := strategies[strings.ToLower(name)]
	if !ok {
		return nil, UnknownStrategyError{Name: name}
	}
	return strategy, nil
}
