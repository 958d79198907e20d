package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shiftbridge/swapboard/pkg/core/model"
)

type shiftBoardLoadedMsg struct {
	requests []model.ShiftSwapRequest
}

type dayOffBoardLoadedMsg struct {
	requests []model.DayOffSwapRequest
}

type boardLoadFailedMsg struct {
	err error
}

type submitDoneMsg struct{}

type submitFailedMsg struct {
	err error
}

type toastExpiredMsg struct{}

const toastDuration = 3 * time.Second

func expireToast() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}
