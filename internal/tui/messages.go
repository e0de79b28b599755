package tui

import (
	"github.com/MKhiriev/go-face-register/models"
)

type stageMsg struct {
	stage models.Stage
}

type streamBoundMsg struct {
	source string
}

type progressMsg struct {
	done  int
	total int
}

type responseMsg struct {
	result models.RegisterResult
}

// alertMsg opens the alert overlay; ack is closed when it is dismissed.
type alertMsg struct {
	text string
	ack  chan struct{}
}

type sessionDoneMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
