package config

// StateID identifies a fighter state and the animation clip that goes with it.
type StateID int

const (
	StateNone StateID = iota - 1

	Idle
	Block
	Dodge
	Punch
	PunchWarning
	Hit
	Death
)

// StateToName maps a StateID to the clip key used in tuning files.
var StateToName = map[StateID]string{
	Idle:         "idle",
	Block:        "block",
	Dodge:        "dodge",
	Punch:        "punch",
	PunchWarning: "punch_warning",
	Hit:          "hit",
	Death:        "death",
}

// NameToState is the inverse of StateToName.
var NameToState = func() map[string]StateID {
	m := make(map[string]StateID, len(StateToName))
	for id, name := range StateToName {
		m[name] = id
	}
	return m
}()

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "none"
}
