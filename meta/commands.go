package meta

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type CommandSet Trie[tea.Msg]

func (cs *CommandSet) trie() *Trie[tea.Msg] {
	return (*Trie[tea.Msg])(cs)
}

// A command is split into its characters for the Trie, as a Motion is into its strokes
type Command []string

func NewCommand(command string) Command {
	return strings.Split(command, "")
}

func GlobalCommands() CommandSet {
	var commands Trie[tea.Msg]

	commands.Insert(NewCommand("q"), tea.QuitMsg{})
	commands.Insert(NewCommand("reload"), ReloadViewMsg{})
	commands.Insert(NewCommand("help"), ShowTextModalMsg{Text: HELPTEXT})

	return CommandSet(commands)
}

const HELPTEXT = `Everywhere
  gt / gT     next / previous tab
  i           insert mode, esc to leave
  :q          quit
  :reload     reload the current view

Calendar
  h / l       previous / next day
  k / j       previous / next week
  t / T       today / tomorrow
  gc          write an entry for the selected date

Entries
  /           search by title, enter to keep the results
  s / S       cycle how entries are sorted
  gd / gx     view / delete the selected entry
  gc          write an entry
  :deleteall  delete every entry

Writing an entry
  tab         next field
  ga          attach an image
  gr          clear the form
  :w          save

gl or esc closes this`
