package contracts

import "time"

const (
	EventItemsAssigned        = "items.assigned"
	EventEvaluationsSubmitted = "evaluations.submitted"
)

type Event struct {
	Id       string           `json:"id"`
	Type     string           `json:"type"`
	Reviewer string           `json:"reviewer"`
	Items    []*ChecklistItem `json:"items"`
	At       time.Time        `json:"at"`
}

type EventDispatcher interface {
	Dispatch(event *Event)
	Start()
	Close()
}
