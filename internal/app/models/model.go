package models

import (
	"time"
)

type CreateSubscriptionRequest struct {
	Team string
	URL  string
}

type DeleteSubscriptionRequest struct {
	Team string
	URL  string
}

// Subscription pairs a watched team (free-form display name) with a recipient endpoint.
type Subscription struct {
	Team      string
	URL       string
	CreatedAt time.Time
}

// WatchedTeam is a team with at least one subscription. Key is the normalized team name.
type WatchedTeam struct {
	Key  string
	Name string
}

// MatchCandidate is a tentative match record extracted from one upstream document.
type MatchCandidate struct {
	ID      string
	Team1   string
	Team2   string
	Event   string
	Link    string
	Stream  string
	Context string
}

// Document is what an upstream source returns: page text, structured records, or both.
type Document struct {
	Source  string
	BaseURL string
	Body    string
	Records []RawMatch
}

// RawMatch is a match-like record from a structured upstream. Team fields may be empty,
// in which case the teams are parsed out of Name.
type RawMatch struct {
	ID     string
	Name   string
	Team1  string
	Team2  string
	Event  string
	URL    string
	Stream string
}

type State struct {
	Subscriptions []Subscription
	Seen          map[string][]string
}

func NewState() State {
	return State{
		Subscriptions: []Subscription{},
		Seen:          map[string][]string{},
	}
}

type Notification struct {
	URL     string
	Team    string
	Message string
	Match   MatchCandidate
}

type DeliveryStatus string

const (
	Delivered      DeliveryStatus = "delivered"
	DeliveryFailed DeliveryStatus = "delivery_failed"
)

type DeliveryResult struct {
	URL     string
	MatchID string
	Status  DeliveryStatus
	Err     error
}

type TeamReport struct {
	Team       string
	Candidates int
	Matched    int
	New        int
	Delivered  int
	Failed     int
	Err        error
}

type CycleReport struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Teams      []TeamReport
}
