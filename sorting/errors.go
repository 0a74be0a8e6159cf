package sorting

import "fmt"

type UnknownStrategyError struct {
	Name string
}

func (e UnknownStrategyError) Error() string {
	return fmt.Sprintf("Unknown sort strategy [%s]", e.Name)
}
