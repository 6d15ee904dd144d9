// Package cli provides the taskdeck command-line layer: the cobra
// commands, the command parser for the interactive loop, and the
// console driver itself.
package cli

import "strings"

// Command is a classified user intent read from the console.
type Command int

const (
	CmdUnknown Command = iota
	CmdAdd
	CmdList
	CmdComplete
	CmdRemove
	CmdSort
	CmdHelp
	CmdExit
)

func (c Command) String() string {
	switch c {
	case CmdAdd:
		return "add"
	case CmdList:
		return "list"
	case CmdComplete:
		return "complete"
	case CmdRemove:
		return "remove"
	case CmdSort:
		return "sort"
	case CmdHelp:
		return "help"
	case CmdExit:
		return "exit"
	}
	return "unknown"
}

// commandTable is the closed mapping from normalized input to commands:
// a numeric shortcut plus an English and a Spanish spelling for each
// command, and the help/exit synonyms. No partial matching.
var commandTable = map[string]Command{
	"1": CmdAdd, "add": CmdAdd, "agregar": CmdAdd,
	"2": CmdList, "list": CmdList, "listar": CmdList,
	"3": CmdComplete, "complete": CmdComplete, "completar": CmdComplete,
	"4": CmdRemove, "remove": CmdRemove, "eliminar": CmdRemove,
	"5": CmdSort, "sort": CmdSort, "ordenar": CmdSort,
	"help": CmdHelp, "ayuda": CmdHelp, "?": CmdHelp,
	"exit": CmdExit, "salir": CmdExit, "quit": CmdExit,
}

// ParseCommand classifies one line of user input. The input is trimmed
// and case-folded before lookup; anything outside the table maps to
// CmdUnknown.
func ParseCommand(input string) Command {
	if cmd, ok := commandTable[strings.ToLower(strings.TrimSpace(input))]; ok {
		return cmd
	}
	return CmdUnknown
}
