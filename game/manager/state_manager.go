package manager

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// RoundRecord is one finished round.
type RoundRecord struct {
	ID        uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Cause     CollisionType
	Won       bool
}

// Duration of the round.
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps the high score and round history for the lifetime of the
// process. Nothing is written to disk.
type StateManager struct {
	highScore int
	rounds    []RoundRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		rounds: make([]RoundRecord, 0),
	}
}

// RecordRound stores a finished round and reports whether it set a new high
// score.
func (sm *StateManager) RecordRound(r RoundRecord) bool {
	sm.rounds = append(sm.rounds, r)
	return sm.UpdateScore(r.Score)
}

// UpdateScore raises the high score if score beats it.
func (sm *StateManager) UpdateScore(score int) bool {
	if score > sm.highScore {
		sm.highScore = score
		return true
	}
	return false
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetGamesPlayed() int {
	return len(sm.rounds)
}

// GetScoreHistory returns the scores in the order the rounds finished.
func (sm *StateManager) GetScoreHistory() []int {
	scores := make([]int, len(sm.rounds))
	for i, r := range sm.rounds {
		scores[i] = r.Score
	}
	return scores
}

// LastRound returns the most recent record, if any.
func (sm *StateManager) LastRound() (RoundRecord, bool) {
	if len(sm.rounds) == 0 {
		return RoundRecord{}, false
	}
	return sm.rounds[len(sm.rounds)-1], true
}

func (sm *StateManager) GetAverageScore() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	total := 0
	for _, r := range sm.rounds {
		total += r.Score
	}
	return float64(total) / float64(len(sm.rounds))
}

func (sm *StateManager) GetMedianScore() float64 {
	scores := sm.GetScoreHistory()
	if len(scores) == 0 {
		return 0
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// GetAverageDuration returns the mean round length in seconds.
func (sm *StateManager) GetAverageDuration() float64 {
	if len(sm.rounds) == 0 {
		return 0
	}
	var total time.Duration
	for _, r := range sm.rounds {
		total += r.Duration()
	}
	return total.Seconds() / float64(len(sm.rounds))
}
