package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/buger/goterm"
	"golang.org/x/text/message"

	"animearena/internal/combat"
)

// Renderer turns battle events into localized transcript lines. It also
// implements the arena observer, so one value wires the whole demo to
// the terminal.
type Renderer struct {
	out     io.Writer
	printer *message.Printer
	color   bool
}

var _ combat.Observer = (*Renderer)(nil)

// New builds a renderer writing to out. With color off the lines carry
// no escape codes, which keeps captured transcripts clean.
func New(out io.Writer, printer *message.Printer, color bool) *Renderer {
	return &Renderer{out: out, printer: printer, color: color}
}

// Linef prints one localized line.
func (r *Renderer) Linef(key string, args ...any) {
	r.line(r.printer.Sprintf(key, args...))
}

// Headerf prints one localized line in bold.
func (r *Renderer) Headerf(key string, args ...any) {
	r.line(r.bold(r.printer.Sprintf(key, args...)))
}

// HealLine reports how many hit points a fighter can restore.
func (r *Renderer) HealLine(name string, amount int) {
	r.line(r.paint(r.printer.Sprintf("heal.line", name, amount), goterm.GREEN))
}

// ValidationResult reports the outcome of a pairing check. Failures map
// onto one message per error kind, with a catch-all for anything new.
func (r *Renderer) ValidationResult(a, b string, err error) {
	if err == nil {
		r.Linef("validate.ok", a, b)
		return
	}
	reason := r.printer.Sprintf(reasonKey(err))
	r.line(r.paint(r.printer.Sprintf("validate.rejected", a, b, reason), goterm.RED))
}

func reasonKey(err error) string {
	switch {
	case errors.Is(err, combat.ErrSameFighter):
		return "reject.same_fighter"
	case errors.Is(err, combat.ErrDeadFighter):
		return "reject.dead_fighter"
	case errors.Is(err, combat.ErrInvalidPower):
		return "reject.invalid_power"
	default:
		return "reject.unknown"
	}
}

// PickResult reports a random roster pick, or that there was nothing to
// pick from.
func (r *Renderer) PickResult(name string, ok bool) {
	if !ok {
		r.Linef("pick.empty")
		return
	}
	r.Linef("pick.random", name)
}

// HandleEvent renders one combat event. Types the renderer does not
// know are dropped rather than failing the run.
func (r *Renderer) HandleEvent(ev combat.Event) {
	switch ev.Type {
	case "RoundStart":
		r.line(r.paint(r.printer.Sprintf("battle.round", ev.Round), goterm.YELLOW))
	case "Damage":
		r.renderDamage(ev)
	case "Status":
		r.renderStatus(ev)
	}
}

func (r *Renderer) renderDamage(ev combat.Event) {
	target := payloadString(ev, "target")
	absorbed := payloadInt(ev, "absorbed")
	if absorbed > 0 {
		r.line(r.paint(r.printer.Sprintf("battle.absorb", target, absorbed, payloadInt(ev, "shield")), goterm.CYAN))
	}
	taken := payloadInt(ev, "damage") - absorbed
	r.line(r.paint(r.printer.Sprintf("battle.damage", target, taken, payloadInt(ev, "hp")), goterm.RED))
}

func (r *Renderer) renderStatus(ev combat.Event) {
	universe := r.printer.Sprintf("universe." + payloadString(ev, "universe"))
	class := r.printer.Sprintf("class." + payloadString(ev, "class"))
	r.Linef("status.line",
		payloadString(ev, "name"), universe, class,
		payloadInt(ev, "hp"), payloadInt(ev, "power"), payloadInt(ev, "shield"))
	if form, ok := ev.Payload["titan_form"].(string); ok {
		r.Linef("status.titan_form", form)
	}
	if energy, ok := ev.Payload["cursed_energy"].(int); ok {
		r.Linef("status.cursed_energy", energy)
	}
}

// OnBattleStart announces the pairing before round one.
func (r *Renderer) OnBattleStart(a, b string) {
	r.line(r.bold(r.printer.Sprintf("battle.start", a, b)))
}

// OnBattleEnd announces the winner.
func (r *Renderer) OnBattleEnd(winner string) {
	r.line(r.paint(r.printer.Sprintf("battle.end", winner), goterm.GREEN))
}

func (r *Renderer) line(s string) {
	fmt.Fprintln(r.out, s)
}

func (r *Renderer) paint(s string, color int) string {
	if !r.color {
		return s
	}
	return goterm.Color(s, color)
}

func (r *Renderer) bold(s string) string {
	if !r.color {
		return s
	}
	return goterm.Bold(s)
}

func payloadString(ev combat.Event, key string) string {
	s, _ := ev.Payload[key].(string)
	return s
}

func payloadInt(ev combat.Event, key string) int {
	n, _ := ev.Payload[key].(int)
	return n
}
