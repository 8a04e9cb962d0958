package meta

import tea "github.com/charmbracelet/bubbletea"

// Resolves motions and commands against the bindings of the shown view first,
// falling back to the global ones
type Keymap struct {
	globalMotions  MotionSet
	globalCommands CommandSet

	viewMotions  MotionSet
	viewCommands CommandSet
}

func NewKeymap() *Keymap {
	return &Keymap{
		globalMotions:  GlobalMotions(),
		globalCommands: GlobalCommands(),
	}
}

func (k *Keymap) SetView(motions MotionSet, commands CommandSet) {
	k.viewMotions = motions
	k.viewCommands = commands
}

func (k *Keymap) Motion(mode InputMode, motion Motion) (tea.Msg, bool) {
	if msg, ok := k.viewMotions.forMode(mode).Get(motion); ok {
		return msg, true
	}

	return k.globalMotions.forMode(mode).Get(motion)
}

// Whether motion is bound, or is the start of a longer bound motion
func (k *Keymap) IsMotionPrefix(mode InputMode, motion Motion) bool {
	return k.viewMotions.forMode(mode).ContainsPath(motion) ||
		k.globalMotions.forMode(mode).ContainsPath(motion)
}

func (k *Keymap) Command(command Command) (tea.Msg, bool) {
	if msg, ok := k.viewCommands.trie().Get(command); ok {
		return msg, true
	}

	return k.globalCommands.trie().Get(command)
}

func (k *Keymap) CompleteCommand(command Command) Command {
	if completion := k.viewCommands.trie().Autocompletion(command); completion != nil {
		return completion
	}

	return k.globalCommands.trie().Autocompletion(command)
}
