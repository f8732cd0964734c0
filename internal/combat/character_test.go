package combat

import "testing"

func TestTakeDamage_ShieldAbsorbsBeforeHP(t *testing.T) {
	tests := []struct {
		name       string
		shield     int
		hp         int
		damage     int
		wantShield int
		wantHP     int
	}{
		{"damage under shield", 30, 50, 20, 10, 50},
		{"damage through shield", 30, 50, 45, 0, 35},
		{"no shield", 0, 90, 45, 0, 45},
		{"shield soaks exactly", 40, 70, 40, 0, 70},
		{"overkill clamps hp at zero", 10, 5, 50, 0, 0},
		{"zero damage", 20, 10, 0, 20, 10},
		{"negative damage counts as zero", 30, 50, -5, 30, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCharacter("Tanjiro", tt.hp, 20, DemonSlayer)
			c.SetShield(tt.shield)

			c.TakeDamage(tt.damage)

			if c.Shield() != tt.wantShield {
				t.Fatalf("expected shield %d, got %d", tt.wantShield, c.Shield())
			}
			if c.HP() != tt.wantHP {
				t.Fatalf("expected hp %d, got %d", tt.wantHP, c.HP())
			}
		})
	}
}

func TestTakeDamage_EmitsDamageEvent(t *testing.T) {
	c := NewCharacter("Tanjiro", 50, 20, DemonSlayer)
	c.SetShield(30)
	var events []Event
	c.Emit = func(ev Event) { events = append(events, ev) }

	c.TakeDamage(45)

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.Type != "Damage" {
		t.Fatalf("expected Damage event, got %q", ev.Type)
	}
	if ev.Payload["target"] != "Tanjiro" {
		t.Fatalf("expected target Tanjiro, got %v", ev.Payload["target"])
	}
	if ev.Payload["absorbed"] != 30 || ev.Payload["hp"] != 35 || ev.Payload["shield"] != 0 {
		t.Fatalf("expected absorbed=30 hp=35 shield=0, got %v", ev.Payload)
	}
}

func TestTakeDamage_SilentWithoutEmit(t *testing.T) {
	c := NewCharacter("Tanjiro", 50, 20, DemonSlayer)

	c.TakeDamage(10)

	if c.HP() != 40 {
		t.Fatalf("expected hp 40, got %d", c.HP())
	}
}

func TestSetShield_RejectsOutOfRangeSilently(t *testing.T) {
	tests := []struct {
		name  string
		set   int
		want  int
		prior int
	}{
		{"negative rejected", -1, 25, 25},
		{"above max rejected", 101, 25, 25},
		{"lower bound accepted", 0, 0, 25},
		{"upper bound accepted", 100, 100, 25},
		{"in range accepted", 55, 55, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCharacter("Nezuko", 70, 15, DemonSlayer)
			c.SetShield(tt.prior)

			c.SetShield(tt.set)

			if c.Shield() != tt.want {
				t.Fatalf("expected shield %d, got %d", tt.want, c.Shield())
			}
		})
	}
}

func TestAttack_ClassFormulas(t *testing.T) {
	tests := []struct {
		name string
		c    *Character
		want int
	}{
		{"plain fighter uses raw power", NewCharacter("Tanjiro", 50, 20, DemonSlayer), 20},
		{"titan shifter gains flat bonus", NewTitanShifter("Eren", 120, 30, AttackOnTitan, "Attack Titan"), 45},
		{"sorcerer adds a tenth of cursed energy", NewSorcerer("Gojo", 90, 25, JujutsuKaisen, 100), 35},
		{"cursed energy division truncates", NewSorcerer("Megumi", 80, 10, JujutsuKaisen, 19), 11},
		{"sorcerer without energy falls back to power", NewSorcerer("Yuji", 95, 22, JujutsuKaisen, 0), 22},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Attack(); got != tt.want {
				t.Fatalf("expected attack %d, got %d", tt.want, got)
			}
		})
	}
}

func TestHeal_DefaultAndSorcererOverride(t *testing.T) {
	if got := NewCharacter("Tanjiro", 50, 20, DemonSlayer).Heal(); got != DefaultHealAmount {
		t.Fatalf("expected default heal %d, got %d", DefaultHealAmount, got)
	}
	if got := NewTitanShifter("Eren", 120, 30, AttackOnTitan, "Attack Titan").Heal(); got != DefaultHealAmount {
		t.Fatalf("expected default heal %d for titan shifter, got %d", DefaultHealAmount, got)
	}
	if got := NewSorcerer("Gojo", 90, 25, JujutsuKaisen, 100).Heal(); got != 25 {
		t.Fatalf("expected sorcerer heal 25, got %d", got)
	}
	if got := NewSorcerer("Yuji", 95, 22, JujutsuKaisen, 0).Heal(); got != 25 {
		t.Fatalf("expected sorcerer heal 25 regardless of energy, got %d", got)
	}
}

func TestSetHP_ClampsNegative(t *testing.T) {
	c := NewCharacter("Tanjiro", 50, 20, DemonSlayer)

	c.SetHP(77)
	if c.HP() != 77 {
		t.Fatalf("expected hp 77, got %d", c.HP())
	}
	c.SetHP(-5)
	if c.HP() != 0 {
		t.Fatalf("expected hp clamped to 0, got %d", c.HP())
	}
}

func TestNewCharacter_NegativeHPClamped(t *testing.T) {
	c := NewCharacter("Zombie", -10, 5, DemonSlayer)
	if c.HP() != 0 {
		t.Fatalf("expected hp 0, got %d", c.HP())
	}
}

func TestStatus_EmitsSnapshot(t *testing.T) {
	c := NewTitanShifter("Eren", 120, 30, AttackOnTitan, "Attack Titan")
	var events []Event
	c.Emit = func(ev Event) { events = append(events, ev) }

	c.Status()

	if len(events) != 1 || events[0].Type != "Status" {
		t.Fatalf("expected one Status event, got %v", events)
	}
	p := events[0].Payload
	if p["name"] != "Eren" || p["universe"] != "attack_on_titan" || p["class"] != "titan_shifter" {
		t.Fatalf("expected identity fields in payload, got %v", p)
	}
	if p["hp"] != 120 || p["power"] != 30 || p["shield"] != 0 {
		t.Fatalf("expected stat fields in payload, got %v", p)
	}
	if p["titan_form"] != "Attack Titan" {
		t.Fatalf("expected titan_form in payload, got %v", p)
	}
	if _, ok := p["cursed_energy"]; ok {
		t.Fatalf("expected no cursed_energy for a titan shifter, got %v", p)
	}
}
