package config

// RosterConfig is the on-disk shape of a fighter roster.
type RosterConfig struct {
	Fighters []FighterDef `yaml:"fighters"`
}

// FighterDef describes one fighter. Universe and Class carry the stable
// ids the combat package parses; Class may be omitted for plain
// fighters. TitanForm and CursedEnergy only apply to their classes and
// are ignored otherwise.
type FighterDef struct {
	Name         string `yaml:"name"`
	Universe     string `yaml:"universe"`
	Class        string `yaml:"class"`
	HP           int    `yaml:"hp"`
	Power        int    `yaml:"power"`
	Shield       int    `yaml:"shield"`
	TitanForm    string `yaml:"titan_form"`
	CursedEnergy int    `yaml:"cursed_energy"`
	Note         string `yaml:"note"`
}
