package standings

import (
	"sort"

	"github.com/dugout-labs/pitchside/internal/match"
	"github.com/dugout-labs/pitchside/internal/scorecard"
	"github.com/dugout-labs/pitchside/internal/team"
)

// TeamStanding is one row of a league table.
type TeamStanding struct {
	TeamID   uint   `json:"teamId"`
	TeamName string `json:"teamName"`
	Played   int    `json:"played"`
	Won      int    `json:"won"`
	Lost     int    `json:"lost"`
	Tied     int    `json:"tied"`
	NoResult int    `json:"noResult"`
	Points   int    `json:"points"`
}

const (
	pointsWin      = 2
	pointsTie      = 1
	pointsNoResult = 1
)

// winnerOf decides a completed match from its scorecard. The second return
// is false for a tie or when no decision can be read (missing or one-sided
// scorecard), which the table treats as no result unless the totals are
// equal across two completed innings.
func winnerOf(card *scorecard.Scorecard) (winnerID uint, decided bool, tied bool) {
	if card == nil || card.Innings1 == nil || card.Innings2 == nil {
		return 0, false, false
	}
	switch {
	case card.Innings1.Score > card.Innings2.Score:
		return card.Innings1.BattingTeamID, true, false
	case card.Innings2.Score > card.Innings1.Score:
		return card.Innings2.BattingTeamID, true, false
	default:
		return 0, false, true
	}
}

// Compute builds the league table from finished matches. Completed matches
// award 2 points to the winner; ties and no-results (including abandoned
// matches) award 1 point to each side. Scheduled, live, and postponed
// matches do not count.
func Compute(teams []team.Team, matches []match.Match, cards map[uint]*scorecard.Scorecard) []TeamStanding {
	rows := make(map[uint]*TeamStanding, len(teams))
	for _, t := range teams {
		rows[t.ID] = &TeamStanding{TeamID: t.ID, TeamName: t.Name}
	}

	for _, m := range matches {
		if m.Status != match.StatusCompleted && m.Status != match.StatusAbandoned {
			continue
		}
		a, b := rows[m.TeamAID], rows[m.TeamBID]
		if a == nil || b == nil {
			continue
		}
		a.Played++
		b.Played++

		if m.Status == match.StatusAbandoned {
			a.NoResult++
			b.NoResult++
			a.Points += pointsNoResult
			b.Points += pointsNoResult
			continue
		}

		winnerID, decided, tied := winnerOf(cards[m.ID])
		switch {
		case decided:
			winner, loser := a, b
			if winnerID == b.TeamID {
				winner, loser = b, a
			}
			winner.Won++
			winner.Points += pointsWin
			loser.Lost++
		case tied:
			a.Tied++
			b.Tied++
			a.Points += pointsTie
			b.Points += pointsTie
		default:
			a.NoResult++
			b.NoResult++
			a.Points += pointsNoResult
			b.Points += pointsNoResult
		}
	}

	table := make([]TeamStanding, 0, len(rows))
	for _, row := range rows {
		table = append(table, *row)
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Points != table[j].Points {
			return table[i].Points > table[j].Points
		}
		if table[i].Won != table[j].Won {
			return table[i].Won > table[j].Won
		}
		return table[i].TeamName < table[j].TeamName
	})
	return table
}
