package tat

import (
	"terminaldiary/meta"
)

func (tw *TestWrapper) SwitchTab(direction meta.Sequence) *TestWrapper {
	tw.Send(meta.SwitchTabMsg{Direction: direction})

	return tw
}

func (tw *TestWrapper) SwitchView(viewType meta.ViewType, data ...any) *TestWrapper {
	switch viewType {
	case meta.LISTVIEWTYPE, meta.CREATEVIEWTYPE, meta.CALENDARVIEWTYPE:
		if data != nil {
			panic("view doesn't take argument")
		}

		tw.Send(meta.SwitchViewMsg{ViewType: viewType})

	case meta.DETAILVIEWTYPE, meta.DELETEVIEWTYPE:
		if len(data) != 1 {
			panic("wrong data format passed")
		}

		tw.Send(meta.SwitchViewMsg{ViewType: viewType, Data: data[0]})

	default:
		panic("unexpected meta.ViewType: " + string(viewType))
	}

	return tw
}
