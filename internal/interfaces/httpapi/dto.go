package httpapi

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rdmgray/eplpal/internal/domain/fixture"
	"github.com/rdmgray/eplpal/internal/domain/odds"
	"github.com/rdmgray/eplpal/internal/domain/team"
	"github.com/rdmgray/eplpal/internal/usecase"
)

type healthDTO struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type matchdaysDTO struct {
	Matchdays []int `json:"matchdays"`
}

type oddsTripleDTO struct {
	HomeWin *float64 `json:"home_win,omitempty"`
	Draw    *float64 `json:"draw,omitempty"`
	AwayWin *float64 `json:"away_win,omitempty"`
}

type fixtureDTO struct {
	MatchID    int64          `json:"match_id"`
	Matchday   int            `json:"matchday"`
	Date       string         `json:"date"`
	Time       string         `json:"time"`
	KickoffTBD bool           `json:"kickoff_tbd"`
	HomeTeam   string         `json:"home_team"`
	AwayTeam   string         `json:"away_team"`
	HomeTeamID int64          `json:"home_team_id"`
	AwayTeamID int64          `json:"away_team_id"`
	Status     string         `json:"status"`
	Venue      string         `json:"venue"`
	HomeScore  *int           `json:"home_score"`
	AwayScore  *int           `json:"away_score"`
	Odds       *oddsTripleDTO `json:"odds,omitempty"`
}

type matchdayFixturesDTO struct {
	Matchday int          `json:"matchday"`
	Fixtures []fixtureDTO `json:"fixtures"`
}

type teamFixturesDTO struct {
	TeamID   int64        `json:"team_id"`
	Fixtures []fixtureDTO `json:"fixtures"`
}

type teamDTO struct {
	TeamID    int64  `json:"team_id"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	TLA       string `json:"tla"`
	Crest     string `json:"crest"`
	Founded   *int   `json:"founded"`
	Venue     string `json:"venue"`
}

type teamsDTO struct {
	Teams []teamDTO `json:"teams"`
}

type quoteDTO struct {
	BackPrice    *float64 `json:"back_price"`
	LayPrice     *float64 `json:"lay_price"`
	LastTraded   *float64 `json:"last_traded"`
	TotalMatched *float64 `json:"total_matched"`
}

type historyOddsDTO struct {
	HomeWin *quoteDTO `json:"home_win,omitempty"`
	Draw    *quoteDTO `json:"draw,omitempty"`
	AwayWin *quoteDTO `json:"away_win,omitempty"`
}

type historyPointDTO struct {
	Timestamp string         `json:"timestamp"`
	Odds      historyOddsDTO `json:"odds"`
}

type oddsHistoryDTO struct {
	MatchID  int64             `json:"match_id"`
	HomeTeam string            `json:"home_team"`
	AwayTeam string            `json:"away_team"`
	History  []historyPointDTO `json:"history"`
}

type bettorsDTO struct {
	Bettors []int64 `json:"bettors"`
}

type betStatusesDTO struct {
	Statuses []string `json:"statuses"`
}

type betMatchDTO struct {
	MatchID  int64  `json:"match_id"`
	Matchday int    `json:"matchday"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	HomeTeam string `json:"home_team"`
	AwayTeam string `json:"away_team"`
	Status   string `json:"status"`
}

type betDTO struct {
	ID             int64        `json:"id"`
	BettorID       int64        `json:"bettor_id"`
	MatchID        int64        `json:"match_id"`
	SelectionID    int64        `json:"selection_id"`
	RunnerName     string       `json:"runner_name"`
	RunnerType     string       `json:"runner_type"`
	BackOrLay      string       `json:"back_or_lay"`
	BetAmount      *float64     `json:"bet_amount"`
	SelectionOdds  *float64     `json:"selection_odds"`
	CreatedAt      string       `json:"created_at"`
	Status         string       `json:"status"`
	RunnerOutcome  string       `json:"runner_outcome,omitempty"`
	BetWon         *bool        `json:"bet_won"`
	ReturnedAmount *float64     `json:"returned_amount"`
	Match          *betMatchDTO `json:"match"`
}

type bettorBetsDTO struct {
	BettorID int64    `json:"bettor_id"`
	Status   string   `json:"status"`
	Bets     []betDTO `json:"bets"`
}

func fixtureToDTO(item fixture.Fixture, triple *odds.Triple) fixtureDTO {
	out := fixtureDTO{
		MatchID:    item.MatchID,
		Matchday:   item.Matchday,
		Date:       item.Date,
		Time:       item.Time,
		KickoffTBD: item.KickoffTBD(),
		HomeTeam:   item.HomeTeam,
		AwayTeam:   item.AwayTeam,
		HomeTeamID: item.HomeTeamID,
		AwayTeamID: item.AwayTeamID,
		Status:     fixture.NormalizeStatus(item.Status),
		Venue:      item.Venue,
		HomeScore:  item.HomeScore,
		AwayScore:  item.AwayScore,
	}
	if triple != nil && !triple.IsEmpty() {
		out.Odds = &oddsTripleDTO{
			HomeWin: decimalPtrToFloat(triple.HomeWin),
			Draw:    decimalPtrToFloat(triple.Draw),
			AwayWin: decimalPtrToFloat(triple.AwayWin),
		}
	}
	return out
}

func annotatedFixturesToDTO(items []usecase.AnnotatedFixture) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fixtureToDTO(item.Fixture, item.Odds))
	}
	return out
}

func teamToDTO(item team.Team) teamDTO {
	return teamDTO{
		TeamID:    item.ID,
		Name:      item.Name,
		ShortName: item.ShortName,
		TLA:       item.TLA,
		Crest:     item.Crest,
		Founded:   item.Founded,
		Venue:     item.Venue,
	}
}

func quoteToDTO(q *odds.Quote) *quoteDTO {
	if q == nil {
		return nil
	}
	return &quoteDTO{
		BackPrice:    nullDecimalToFloat(q.BackPrice),
		LayPrice:     nullDecimalToFloat(q.LayPrice),
		LastTraded:   nullDecimalToFloat(q.LastTraded),
		TotalMatched: nullDecimalToFloat(q.TotalMatched),
	}
}

func historyToDTO(history usecase.OddsHistory) oddsHistoryDTO {
	points := make([]historyPointDTO, 0, len(history.Points))
	for _, point := range history.Points {
		points = append(points, historyPointDTO{
			Timestamp: formatTimestamp(point.Timestamp),
			Odds: historyOddsDTO{
				HomeWin: quoteToDTO(point.HomeWin),
				Draw:    quoteToDTO(point.Draw),
				AwayWin: quoteToDTO(point.AwayWin),
			},
		})
	}
	return oddsHistoryDTO{
		MatchID:  history.Fixture.MatchID,
		HomeTeam: history.Fixture.HomeTeam,
		AwayTeam: history.Fixture.AwayTeam,
		History:  points,
	}
}

func betToDTO(item usecase.JoinedBet) betDTO {
	out := betDTO{
		ID:             item.ID,
		BettorID:       item.BettorID,
		MatchID:        item.MatchID,
		SelectionID:    item.SelectionID,
		RunnerName:     item.RunnerName,
		RunnerType:     item.RunnerType,
		BackOrLay:      item.Side,
		BetAmount:      nullDecimalToFloat(item.Stake),
		SelectionOdds:  nullDecimalToFloat(item.Odds),
		CreatedAt:      formatTimestamp(item.CreatedAt),
		Status:         item.Status,
		RunnerOutcome:  item.RunnerOutcome,
		BetWon:         item.Won,
		ReturnedAmount: nullDecimalToFloat(item.ReturnedAmount),
	}
	if item.Match != nil {
		out.Match = &betMatchDTO{
			MatchID:  item.Match.MatchID,
			Matchday: item.Match.Matchday,
			Date:     item.Match.Date,
			Time:     item.Match.Time,
			HomeTeam: item.Match.HomeTeam,
			AwayTeam: item.Match.AwayTeam,
			Status:   item.Match.Status,
		}
	}
	return out
}

func decimalPtrToFloat(v *decimal.Decimal) *float64 {
	if v == nil {
		return nil
	}
	f := v.InexactFloat64()
	return &f
}

func nullDecimalToFloat(v decimal.NullDecimal) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Decimal.InexactFloat64()
	return &f
}

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
