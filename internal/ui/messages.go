package ui

import (
	"github.com/google/uuid"

	"github.com/akinizer/adventure-of-textland/pkg/scene"
)

// startOrigin says which path produced a first scene, so failures can
// pick the right fallback.
type startOrigin int

const (
	originCreate startOrigin = iota
	originAutoCreate
	originLoad
	originLoadFallback // load attempted because resume failed
	originResume
)

// charactersMsg delivers the saved-character list for the selection
// screen.
type charactersMsg struct {
	characters []scene.CharacterSummary
	err        error
}

// optionListKind distinguishes the creation list fetches.
type optionListKind int

const (
	speciesList optionListKind = iota
	classList
)

type optionsMsg struct {
	kind    optionListKind
	options []scene.Option
	err     error
}

// gameStartMsg delivers the first scene of a play session.
type gameStartMsg struct {
	payload *scene.Payload
	intro   string // echoed into the output log
	name    string // character name to persist
	origin  startOrigin
	err     error
}

// sceneTurnMsg delivers the scene for one dispatched action.
type sceneTurnMsg struct {
	payload *scene.Payload
	action  string
	token   uuid.UUID
	err     error
}

type worldMapMsg struct {
	worldMap *scene.WorldMap
	err      error
}

type saveMsg struct {
	message string
	err     error
}

type deleteMsg struct {
	name string
	err  error
}

type clipboardMsg struct {
	err error
}
