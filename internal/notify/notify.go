// Package notify is the boundary to the notification dispatcher. The
// engine emits events here after each atomic snapshot transition; how
// (or whether) they reach the user is the implementation's business.
package notify

import (
	"fmt"
	"io"

	"tend/internal/ui"
)

// Notifier receives the user-facing events the core produces. Injected
// into the engine, never a process-wide singleton.
type Notifier interface {
	Completed(name string, streak int)
	RewardEarned(name, reward string)
	StreakMilestone(name string, streak int)
	Promoted(name string)
	Demoted(name string)
	TriggerReady(sourceName string, dependents []string)
	AchievementUnlocked(name string)
}

// Console renders events as themed lines on a writer.
type Console struct {
	Out io.Writer
}

func NewConsole(out io.Writer) *Console {
	return &Console{Out: out}
}

func (c *Console) Completed(name string, streak int) {
	fmt.Fprintln(c.Out, ui.Good.Render(ui.IconDone+" "+name)+ui.Muted.Render(fmt.Sprintf(" — streak %d", streak)))
}

func (c *Console) RewardEarned(name, reward string) {
	fmt.Fprintln(c.Out, ui.Gold.Render(ui.IconGift+" Reward earned: ")+reward)
}

func (c *Console) StreakMilestone(name string, streak int) {
	fmt.Fprintln(c.Out, ui.Warn.Render(fmt.Sprintf("%s %s hit a %d-day streak!", ui.IconFlame, name, streak)))
}

func (c *Console) Promoted(name string) {
	fmt.Fprintln(c.Out, ui.Gold.Render(fmt.Sprintf("%s %s is now a habit!", ui.IconCrown, name)))
}

func (c *Console) Demoted(name string) {
	fmt.Fprintln(c.Out, ui.Bad.Render(fmt.Sprintf("%s %s slipped back to a ritual.", ui.IconWarn, name)))
}

func (c *Console) TriggerReady(sourceName string, dependents []string) {
	for _, d := range dependents {
		fmt.Fprintln(c.Out, ui.H2.Render(ui.IconBolt+" Up next: ")+d+ui.Muted.Render(" (after "+sourceName+")"))
	}
}

func (c *Console) AchievementUnlocked(name string) {
	fmt.Fprintln(c.Out, ui.Gold.Render(ui.IconTrophy+" Achievement unlocked: "+name))
}

// Nop discards all events. Used in tests and by commands that only
// read state.
type Nop struct{}

func (Nop) Completed(string, int)         {}
func (Nop) RewardEarned(string, string)   {}
func (Nop) StreakMilestone(string, int)   {}
func (Nop) Promoted(string)               {}
func (Nop) Demoted(string)                {}
func (Nop) TriggerReady(string, []string) {}
func (Nop) AchievementUnlocked(string)    {}
