package scorecard

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"
)

// ExtraType classifies runs not scored off the bat.
type ExtraType string

const (
	ExtraWide   ExtraType = "wide"
	ExtraNoBall ExtraType = "no_ball"
	ExtraBye    ExtraType = "bye"
	ExtraLegBye ExtraType = "leg_bye"
)

// Legal reports whether a delivery with this extra counts toward the
// six-ball over. Byes and leg-byes are legal deliveries; wides and
// no-balls are not.
func (e ExtraType) Legal() bool {
	return e != ExtraWide && e != ExtraNoBall
}

// Extras describes the extra component of a delivery, if any.
type Extras struct {
	Type ExtraType `json:"type,omitempty"`
	Runs int       `json:"runs,omitempty"`
}

// Wicket describes a dismissal on a delivery.
type Wicket struct {
	Type      string `json:"type"` // e.g. "Bowled", "Caught", "LBW"
	PlayerID  uint   `json:"playerId"`
	FielderID *uint  `json:"fielderId,omitempty"`
}

// Ball is one delivery in an innings. Balls are append-only: once recorded
// they are never mutated or removed.
type Ball struct {
	Over         int     `json:"over"`
	BallInOver   int     `json:"ballInOver"`
	BowlerID     uint    `json:"bowlerId"`
	StrikerID    uint    `json:"batsmanId"`
	NonStrikerID uint    `json:"nonStrikerId"`
	RunsScored   int     `json:"runsScored"`
	Extras       Extras  `json:"extras"`
	Wicket       *Wicket `json:"wicket,omitempty"`
}

// IsLegal reports whether this delivery counts toward the over.
func (b Ball) IsLegal() bool {
	return b.Extras.Type.Legal()
}

// Innings is one team's batting turn, stored as a JSON blob on the
// scorecard row. OversPlayed encodes completed
// overs and legal balls in the current over as <overs>.<balls>, e.g. 10.2.
type Innings struct {
	BattingTeamID uint    `json:"battingTeamId"`
	BowlingTeamID uint    `json:"bowlingTeamId"`
	Score         int     `json:"score"`
	Wickets       int     `json:"wickets"`
	OversPlayed   float64 `json:"oversPlayed"`
	Balls         []Ball  `json:"balls"`
}

// Value serializes the innings for storage as a JSON column.
func (i *Innings) Value() (driver.Value, error) {
	if i == nil {
		return nil, nil
	}
	return json.Marshal(i)
}

// Scan deserializes a JSON column into the innings.
func (i *Innings) Scan(src interface{}) error {
	if src == nil {
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, i)
	case string:
		return json.Unmarshal([]byte(v), i)
	default:
		return fmt.Errorf("Innings: expected []byte or string, got %T", src)
	}
}

// Scorecard aggregates up to two innings for one match. It is created
// lazily when the first innings starts; Innings2 stays nil until the
// second innings begins.
type Scorecard struct {
	gorm.Model
	MatchID  uint     `json:"matchId" gorm:"uniqueIndex;not null"`
	Innings1 *Innings `json:"innings1,omitempty" gorm:"type:json"`
	Innings2 *Innings `json:"innings2,omitempty" gorm:"type:json"`
}

// ActiveInnings returns the innings currently being scored: the second if
// present, else the first. Nil when no innings has started.
func (s *Scorecard) ActiveInnings() *Innings {
	if s == nil {
		return nil
	}
	if s.Innings2 != nil {
		return s.Innings2
	}
	return s.Innings1
}

// InningsFor returns the innings in which the given team bats, or nil.
func (s *Scorecard) InningsFor(battingTeamID uint) *Innings {
	if s == nil {
		return nil
	}
	if s.Innings2 != nil && s.Innings2.BattingTeamID == battingTeamID {
		return s.Innings2
	}
	if s.Innings1 != nil && s.Innings1.BattingTeamID == battingTeamID {
		return s.Innings1
	}
	return nil
}
