package session

import "errors"

var (
	ErrNoBuffer          = errors.New("no signal loaded")
	ErrNoActiveSelection = errors.New("no active selection or chunk")
	ErrLastChunkDeletion = errors.New("cannot delete the last remaining chunk")
)
