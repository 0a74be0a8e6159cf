package util

import (
	"fmt"
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DemoConfig drives the zonk command. Every field has a default so an empty
// or missing file still runs both demos.
type DemoConfig struct {
	Player        string   `yaml:"player"`
	DiceCount     int      `yaml:"diceCount"`
	Rolls         int      `yaml:"rolls"`
	ScriptedHands [][]int  `yaml:"scriptedHands"`
	SortData      []int    `yaml:"sortData"`
	Strategies    []string `yaml:"strategies"`
}

func DefaultDemoConfig() DemoConfig {
	return DemoConfig{
		Player:     "player1",
		DiceCount:  6,
		Rolls:      2,
		SortData:   []int{5, 2, 9, 1, 5, 6},
		Strategies: []string{"bubble", "quick"},
	}
}

func ParseDemoConfig(configFile string) (DemoConfig, error) {
	bytes, err := ioutil.ReadFile(configFile)
	if err != nil {
		return DemoConfig{}, errors.Wrap(err, fmt.Sprintf("Error reading demo config file [%s]", configFile))
	}
	return parseDemoConfig(bytes, configFile)
}

func parseDemoConfig(bytes []byte, name string) (DemoConfig, error) {
	data := DefaultDemoConfig()
	err := yaml.Unmarshal(bytes, &data)
	if err != nil {
		return DemoConfig{}, errors.Wrap(err, fmt.Sprintf("Error parsing demo config YAML file [%s]", name))
	}
	if data.DiceCount < 1 {
		return DemoConfig{}, fmt.Errorf("Invalid diceCount %d in [%s]", data.DiceCount, name)
	}
	if data.Rolls < 0 {
		return DemoConfig{}, fmt.Errorf("Invalid rolls %d in [%s]", data.Rolls, name)
	}
	for i, hand := range data.ScriptedHands {
		if len(hand) != data.DiceCount {
			return DemoConfig{}, fmt.Errorf("Scripted hand %d has %d dice, expected %d in [%s]", i, len(hand), data.DiceCount, name)
		}
	}
	return data, nil
}
