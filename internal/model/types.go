// Package model defines shared data structures.
package model

import "time"

// Config defines a typing run.
type Config struct {
	StoryPath    string
	ShowKeyboard bool
}

// StatsConfig defines filters for stats output.
type StatsConfig struct {
	Story string
	Since *time.Time
	Last  int
}

// SessionStats captures a completed typing session.
type SessionStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	StoryPath  string
	Layout     string
	CharsStart int
	CharsEnd   int
	Correct    int
	Incorrect  int
	DurationMs int64
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	StoryPath  string
	Layout     string
	Chars      int
	Correct    int
	Incorrect  int
	DurationMs int64
}
