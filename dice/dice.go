package dice

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

const Faces = 6

// Roller is the dice collaborator of a hand history. Roll changes the
// current faces and Dice returns a copy of them.
type Roller interface {
	Roll()
	Dice() []int
}

type DiceSet struct {
	dice    []int
	randGen *rand.Rand
}

func newSeed() rand.Source {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	return rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))
}

// NewDiceSet returns count six-sided dice. A nil source is seeded from
// crypto/rand.
func NewDiceSet(count int, source rand.Source) (*DiceSet, error) {
	if count < 1 {
		return nil, fmt.Errorf("Invalid dice count %d", count)
	}
	if source == nil {
		source = newSeed()
	}
	return &DiceSet{
		dice:    make([]int, count),
		randGen: rand.New(source),
	}, nil
}

func (d *DiceSet) Roll() {
	for i := range d.dice {
		d.dice[i] = d.randGen.Intn(Faces) + 1
	}
}

func (d *DiceSet) Dice() []int {
	dice := make([]int, len(d.dice))
	copy(dice, d.dice)
	return dice
}

// ScriptedDice replays fixed hands in order and keeps returning the last one
// once the script runs out.
type ScriptedDice struct {
	hands [][]int
	next  int
	dice  []int
}

func NewScriptedDice(hands [][]int) (*ScriptedDice, error) {
	if len(hands) == 0 {
		return nil, fmt.Errorf("Scripted dice need at least one hand")
	}
	for i, hand := range hands {
		for _, face := range hand {
			if face < 1 || face > Faces {
				return nil, fmt.Errorf("Invalid face %d in scripted hand %d", face, i)
			}
		}
	}
	return &ScriptedDice{hands: hands}, nil
}

func (s *ScriptedDice) Roll() {
	s.dice = s.hands[s.next]
	if s.next < len(s.hands)-1 {
		s.next++
	}
}

func (s *ScriptedDice) Dice() []int {
	dice := make([]int, len(s.dice))
	copy(dice, s.dice)
	return dice
}
