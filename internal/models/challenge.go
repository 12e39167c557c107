package models

import (
	"math"
	"time"
)

// ChallengeStatus represents the current lifecycle state of a challenge
type ChallengeStatus string

const (
	// ChallengeStatusPending indicates a challenge is open and waiting for an accepter
	ChallengeStatusPending ChallengeStatus = "pending"

	// ChallengeStatusAccepted indicates both players have escrowed their bets
	ChallengeStatusAccepted ChallengeStatus = "accepted"

	// ChallengeStatusInProgress indicates the match is being played
	ChallengeStatusInProgress ChallengeStatus = "in_progress"

	// ChallengeStatusCompleted indicates the match has been settled
	ChallengeStatusCompleted ChallengeStatus = "completed"

	// ChallengeStatusCancelled indicates the challenge was cancelled or expired before acceptance
	ChallengeStatusCancelled ChallengeStatus = "cancelled"
)

// GameTitle identifies which supported title a challenge is played on
type GameTitle string

const (
	GameTitleFIFA      GameTitle = "fifa"
	GameTitleEFootball GameTitle = "efootball"
	GameTitleCODM      GameTitle = "codm"
	GameTitlePUBG      GameTitle = "pubg"
)

// AdminDecision records how an administrator arbitrated a challenge
type AdminDecision string

const (
	AdminDecisionChallenger AdminDecision = "challenger"
	AdminDecisionAccepter   AdminDecision = "accepter"
	AdminDecisionRefund     AdminDecision = "refund"
)

// MatchFeeRate is the hidden per-player cut taken from each bet.
const MatchFeeRate = 0.25

// Window is a half-open time interval [Start, End)
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two windows intersect
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// Challenge represents a wager between two players on an externally played match
type Challenge struct {
	// ID is the unique identifier for the challenge
	ID string `json:"id"`

	// Game is the title the match is played on
	Game GameTitle `json:"game"`

	// ChallengerID is the user who created the challenge
	ChallengerID string `json:"challenger_id"`

	// AccepterID is the user who accepted the challenge; empty while pending
	AccepterID string `json:"accepter_id"`

	// BetAmount is the stake escrowed from each player, in whole currency units
	BetAmount int64 `json:"bet_amount"`

	// ScheduledMatchTime is when the match is booked to start
	ScheduledMatchTime time.Time `json:"scheduled_match_time"`

	// MatchDurationMinutes is the booked length of the match
	MatchDurationMinutes int `json:"match_duration_minutes"`

	// Status is the current lifecycle state
	Status ChallengeStatus `json:"status"`

	// ExpiresAt is when an unaccepted challenge ages out
	ExpiresAt time.Time `json:"expires_at"`

	// MatchTime is when play actually began
	MatchTime time.Time `json:"match_time"`

	// CompletedAt is when the challenge was settled
	CompletedAt time.Time `json:"completed_at"`

	// RoomCode is the code players use to join the match room
	RoomCode string `json:"room_code"`

	// AdminRoomCode is the spectator/admin code for the match room
	AdminRoomCode string `json:"admin_room_code"`

	// RoomCodeProvidedAt is when the room code was issued
	RoomCodeProvidedAt time.Time `json:"room_code_provided_at"`

	// RoomCodeProvidedBy is who issued the room code
	RoomCodeProvidedBy string `json:"room_code_provided_by"`

	// WinnerID is the settled winner of the match
	WinnerID string `json:"winner_id"`

	// LoserID is the settled loser of the match
	LoserID string `json:"loser_id"`

	// WinnerScreenshot is the evidence reference submitted for the winner
	WinnerScreenshot string `json:"winner_screenshot"`

	// LoserScreenshot is the evidence reference submitted for the loser
	LoserScreenshot string `json:"loser_screenshot"`

	// IsDisputed marks a completed challenge as contested
	IsDisputed bool `json:"is_disputed"`

	// DisputeReason is the complaint text supplied by the disputing player
	DisputeReason string `json:"dispute_reason"`

	// AdminDecision records an administrator's arbitration, if any
	AdminDecision AdminDecision `json:"admin_decision"`

	// CreatedAt is when the challenge was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the challenge was last modified
	UpdatedAt time.Time `json:"updated_at"`
}

// MatchFee returns the per-player fee deducted from each escrowed bet.
func (c *Challenge) MatchFee() int64 {
	return int64(math.Round(float64(c.BetAmount) * MatchFeeRate))
}

// TotalPot returns the amount paid to the winner: both bets combined minus the
// combined match fee. Note this is 1.5x the bet while total escrow is 2x the
// bet; the 0.5x difference is the retained fee and is not shown in the pot.
func (c *Challenge) TotalPot() int64 {
	return int64(math.Round(float64(c.BetAmount) * 1.5))
}

// MatchWindow returns the booked time range of the match
func (c *Challenge) MatchWindow() Window {
	return Window{
		Start: c.ScheduledMatchTime,
		End:   c.ScheduledMatchTime.Add(time.Duration(c.MatchDurationMinutes) * time.Minute),
	}
}

// BufferedWindow returns the match window expanded by buffer on each side
func (c *Challenge) BufferedWindow(buffer time.Duration) Window {
	w := c.MatchWindow()
	return Window{
		Start: w.Start.Add(-buffer),
		End:   w.End.Add(buffer),
	}
}

// IsParticipant reports whether the given user is the challenger or accepter
func (c *Challenge) IsParticipant(userID string) bool {
	return userID != "" && (c.ChallengerID == userID || c.AccepterID == userID)
}

// Opponent returns the other participant's ID, or empty if the user is not a
// participant or no accepter has joined yet
func (c *Challenge) Opponent(userID string) string {
	switch userID {
	case c.ChallengerID:
		return c.AccepterID
	case c.AccepterID:
		return c.ChallengerID
	}
	return ""
}

// Active reports whether the challenge occupies its scheduled window
func (c *Challenge) Active() bool {
	return c.Status == ChallengeStatusAccepted || c.Status == ChallengeStatusInProgress
}

// Expired reports whether a pending challenge has aged out
func (c *Challenge) Expired(now time.Time) bool {
	return c.Status == ChallengeStatusPending && now.After(c.ExpiresAt)
}
