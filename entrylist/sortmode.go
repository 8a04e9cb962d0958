package entrylist

import "fmt"

// How the visible entries are ordered when no explicit filter+sort is running.
type SortMode string

const (
	SORTNONE      SortMode = "NONE"
	SORTDATE      SortMode = "DATE"
	SORTTITLEDESC SortMode = "Z-A"
)

var SortModes = []SortMode{SORTNONE, SORTDATE, SORTTITLEDESC}

func ParseSortMode(input string) (SortMode, error) {
	switch input {
	case "", "none":
		return SORTNONE, nil
	case "date":
		return SORTDATE, nil
	case "title":
		return SORTTITLEDESC, nil
	default:
		return "", fmt.Errorf("unknown sort mode %q, expected one of none, date, title", input)
	}
}

func (sm SortMode) String() string {
	switch sm {
	case SORTNONE:
		return "None"
	case SORTDATE:
		return "Date"
	case SORTTITLEDESC:
		return "Z to A"
	default:
		panic(fmt.Sprintf("unexpected entrylist.SortMode: %#v", sm))
	}
}

func (sm SortMode) CompareId() int {
	switch sm {
	case SORTNONE:
		return 0
	case SORTDATE:
		return 1
	case SORTTITLEDESC:
		return 2
	default:
		panic(fmt.Sprintf("unexpected entrylist.SortMode: %#v", sm))
	}
}
