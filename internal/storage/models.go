package storage

// Item is the stored shape of a ritual or habit row. Trigger columns
// and the frequency mask are kept primitive here; the engine interprets
// them.
type Item struct {
	ID   string
	Kind string
	Name string

	TriggerKind      string
	TriggerTime      string
	TriggerHabitID   string
	TriggerHabitName string

	Frequency []int
	Reward    string

	Streak        int
	FrozenStreaks int
	SkipUsed      bool

	CompletedDates []string
	LastCompleted  string
	CreatedAt      string
	BecameHabitAt  string
}

type Task struct {
	ID        string
	Name      string
	Date      string
	Completed bool
	CreatedAt string
}

type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Unlocked    bool
	UnlockedAt  string
	Progress    int
	MaxProgress int
}
