package types

import (
	"fmt"
	"strings"
)

type ShockKind uint8

const (
	Oblique ShockKind = iota
	Normal
)

func (sk ShockKind) String() string {
	switch sk {
	case Oblique:
		return "Oblique"
	case Normal:
		return "Normal"
	}
	return fmt.Sprintf("ShockKind(%d)", uint8(sk))
}

// Branch selects one of the two wave angle solutions for a given deflection
type Branch uint8

const (
	Weak Branch = iota
	Strong
)

var BranchNameMap = map[string]Branch{
	"weak":   Weak,
	"w":      Weak,
	"strong": Strong,
	"s":      Strong,
}

func ParseBranch(label string) (b Branch, err error) {
	var ok bool
	if b, ok = BranchNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown shock branch %q, expected weak or strong", label)
	}
	return
}

func (b Branch) String() string {
	switch b {
	case Weak:
		return "Weak"
	case Strong:
		return "Strong"
	}
	return fmt.Sprintf("Branch(%d)", uint8(b))
}

// Regime is the flow pattern inside a converging-diverging nozzle for a given back pressure
type Regime uint8

const (
	Subsonic Regime = iota
	ShockInNozzle
	OverExpanded
	Design
	UnderExpanded
)

var regimeNames = []string{
	"Subsonic",
	"ShockInNozzle",
	"OverExpanded",
	"Design",
	"UnderExpanded",
}

func (r Regime) String() string {
	if int(r) < len(regimeNames) {
		return regimeNames[r]
	}
	return fmt.Sprintf("Regime(%d)", uint8(r))
}

// Choked is true when the throat is sonic
func (r Regime) Choked() bool {
	return r != Subsonic
}
