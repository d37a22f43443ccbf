package memory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rdmgray/eplpal/internal/domain/bet"
	"github.com/rdmgray/eplpal/internal/domain/fixture"
	"github.com/rdmgray/eplpal/internal/domain/odds"
	"github.com/rdmgray/eplpal/internal/domain/team"
)

// Seed holds a small 2025/26 Premier League dataset for local runs and tests.
type Seed struct {
	Teams       []team.Team
	Fixtures    []fixture.Fixture
	OddsMarkets []OddsMarket
	OddsRows    []OddsRow
	Bets        []bet.Bet
}

func DefaultSeed() Seed {
	return Seed{
		Teams:       SeedTeams(),
		Fixtures:    SeedFixtures(),
		OddsMarkets: SeedOddsMarkets(),
		OddsRows:    SeedOddsRows(),
		Bets:        SeedBets(),
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: 57, Name: "Arsenal FC", ShortName: "Arsenal", TLA: "ARS", Crest: "https://crests.football-data.org/57.png", Founded: intPtr(1886), Venue: "Emirates Stadium"},
		{ID: 58, Name: "Aston Villa FC", ShortName: "Aston Villa", TLA: "AVL", Crest: "https://crests.football-data.org/58.png", Founded: intPtr(1872), Venue: "Villa Park"},
		{ID: 61, Name: "Chelsea FC", ShortName: "Chelsea", TLA: "CHE", Crest: "https://crests.football-data.org/61.png", Founded: intPtr(1905), Venue: "Stamford Bridge"},
		{ID: 62, Name: "Everton FC", ShortName: "Everton", TLA: "EVE", Crest: "https://crests.football-data.org/62.png", Founded: intPtr(1878), Venue: "Hill Dickinson Stadium"},
		{ID: 63, Name: "Fulham FC", ShortName: "Fulham", TLA: "FUL", Crest: "https://crests.football-data.org/63.png", Founded: intPtr(1879), Venue: "Craven Cottage"},
		{ID: 64, Name: "Liverpool FC", ShortName: "Liverpool", TLA: "LIV", Crest: "https://crests.football-data.org/64.png", Founded: intPtr(1892), Venue: "Anfield"},
		{ID: 65, Name: "Manchester City FC", ShortName: "Man City", TLA: "MCI", Crest: "https://crests.football-data.org/65.png", Founded: intPtr(1880), Venue: "Etihad Stadium"},
		{ID: 66, Name: "Manchester United FC", ShortName: "Man United", TLA: "MUN", Crest: "https://crests.football-data.org/66.png", Founded: intPtr(1878), Venue: "Old Trafford"},
		{ID: 67, Name: "Newcastle United FC", ShortName: "Newcastle", TLA: "NEW", Crest: "https://crests.football-data.org/67.png", Founded: intPtr(1881), Venue: "St. James' Park"},
		{ID: 73, Name: "Tottenham Hotspur FC", ShortName: "Tottenham", TLA: "TOT", Crest: "https://crests.football-data.org/73.png", Founded: intPtr(1882), Venue: "Tottenham Hotspur Stadium"},
		{ID: 351, Name: "Nottingham Forest FC", ShortName: "Nottingham", TLA: "NOT", Crest: "https://crests.football-data.org/351.png", Founded: intPtr(1865), Venue: "The City Ground"},
		{ID: 397, Name: "Brighton & Hove Albion FC", ShortName: "Brighton Hove", TLA: "BHA", Crest: "https://crests.football-data.org/397.png", Founded: intPtr(1901), Venue: "The American Express Stadium"},
		{ID: 402, Name: "Brentford FC", ShortName: "Brentford", TLA: "BRE", Crest: "https://crests.football-data.org/402.png", Founded: intPtr(1889), Venue: "Gtech Community Stadium"},
		{ID: 563, Name: "West Ham United FC", ShortName: "West Ham", TLA: "WHU", Crest: "https://crests.football-data.org/563.png", Founded: intPtr(1895), Venue: "London Stadium"},
	}
}

func SeedFixtures() []fixture.Fixture {
	return []fixture.Fixture{
		{MatchID: 90, Matchday: 4, Date: "2025-09-06", Time: "12:30:00", HomeTeam: "Arsenal FC", AwayTeam: "Nottingham Forest FC", HomeTeamID: 57, AwayTeamID: 351, Status: "FINISHED", Venue: "Emirates Stadium", HomeScore: intPtr(3), AwayScore: intPtr(0)},
		{MatchID: 91, Matchday: 4, Date: "2025-09-06", Time: "17:30:00", HomeTeam: "Manchester City FC", AwayTeam: "Manchester United FC", HomeTeamID: 65, AwayTeamID: 66, Status: "FINISHED", Venue: "Etihad Stadium", HomeScore: intPtr(3), AwayScore: intPtr(0)},
		{MatchID: 92, Matchday: 4, Date: "2025-09-07", Time: "14:00:00", HomeTeam: "Everton FC", AwayTeam: "Brighton & Hove Albion FC", HomeTeamID: 62, AwayTeamID: 397, Status: "FINISHED", Venue: "Hill Dickinson Stadium", HomeScore: intPtr(1), AwayScore: intPtr(1)},
		{MatchID: 100, Matchday: 5, Date: "2025-09-13", Time: "15:00:00", HomeTeam: "Liverpool FC", AwayTeam: "Chelsea FC", HomeTeamID: 64, AwayTeamID: 61, Status: "SCHEDULED", Venue: "Anfield"},
		{MatchID: 101, Matchday: 5, Date: "2025-09-13", Time: "12:30:00", HomeTeam: "Tottenham Hotspur FC", AwayTeam: "West Ham United FC", HomeTeamID: 73, AwayTeamID: 563, Status: "TIMED", Venue: "Tottenham Hotspur Stadium"},
		{MatchID: 102, Matchday: 5, Date: "2025-09-14", Time: "00:00:00", HomeTeam: "Newcastle United FC", AwayTeam: "Aston Villa FC", HomeTeamID: 67, AwayTeamID: 58, Status: "SCHEDULED", Venue: "St. James' Park"},
		{MatchID: 103, Matchday: 5, Date: "2025-09-13", Time: "15:00:00", HomeTeam: "Brentford FC", AwayTeam: "Fulham FC", HomeTeamID: 402, AwayTeamID: 63, Status: "SCHEDULED", Venue: "Gtech Community Stadium"},
		{MatchID: 110, Matchday: 6, Date: "2025-09-20", Time: "17:30:00", HomeTeam: "Chelsea FC", AwayTeam: "Arsenal FC", HomeTeamID: 61, AwayTeamID: 57, Status: "SCHEDULED", Venue: "Stamford Bridge"},
		{MatchID: 111, Matchday: 6, Date: "2025-09-20", Time: "12:30:00", HomeTeam: "Manchester United FC", AwayTeam: "Liverpool FC", HomeTeamID: 66, AwayTeamID: 64, Status: "SCHEDULED", Venue: "Old Trafford"},
	}
}

func SeedOddsMarkets() []OddsMarket {
	return []OddsMarket{
		{ID: 1, HomeTeam: "Liverpool", AwayTeam: "Chelsea"},
		{ID: 2, HomeTeam: "Tottenham", AwayTeam: "West Ham"},
		{ID: 3, HomeTeam: "Arsenal", AwayTeam: "Nottm Forest"},
		{ID: 4, HomeTeam: "Man City", AwayTeam: "Man Utd"},
	}
}

var (
	seedOddsT1 = time.Date(2025, 9, 12, 10, 0, 0, 0, time.UTC)
	seedOddsT2 = time.Date(2025, 9, 12, 10, 30, 0, 0, time.UTC)
)

func SeedOddsRows() []OddsRow {
	return []OddsRow{
		oddsRow(1, odds.RunnerHomeWin, "1.80", "1.82", "1.81", "15230.50", seedOddsT1),
		oddsRow(1, odds.RunnerDraw, "3.40", "3.45", "3.40", "4120.00", seedOddsT1),
		oddsRow(1, odds.RunnerHomeWin, "1.75", "1.77", "1.76", "18804.10", seedOddsT2),
		oddsRow(1, "Over 2.5 Goals", "1.62", "1.64", "1.63", "900.00", seedOddsT2),

		oddsRow(2, odds.RunnerHomeWin, "2.10", "2.12", "2.10", "8800.00", seedOddsT1),
		oddsRow(2, odds.RunnerDraw, "3.60", "3.65", "3.60", "2100.00", seedOddsT1),
		oddsRow(2, odds.RunnerAwayWin, "3.30", "3.35", "3.30", "4300.00", seedOddsT1),

		oddsRow(3, odds.RunnerHomeWin, "1.40", "1.41", "1.40", "30500.00", time.Date(2025, 9, 5, 9, 0, 0, 0, time.UTC)),
		oddsRow(4, odds.RunnerAwayWin, "6.00", "6.20", "6.00", "12000.00", time.Date(2025, 9, 5, 9, 30, 0, 0, time.UTC)),
	}
}

func SeedBets() []bet.Bet {
	return []bet.Bet{
		{ID: 1, BettorID: 7, MatchID: 100, SelectionID: 56323, RunnerName: "Liverpool", RunnerType: string(odds.RunnerHomeWin), Side: bet.SideBack, Stake: money("10.00"), Odds: money("1.80"), CreatedAt: time.Date(2025, 9, 12, 10, 5, 0, 0, time.UTC), Status: "PLACED"},
		{ID: 2, BettorID: 7, MatchID: 101, SelectionID: 48224, RunnerName: "Tottenham", RunnerType: string(odds.RunnerHomeWin), Side: bet.SideBack, Stake: money("5.00"), Odds: money("2.10"), CreatedAt: time.Date(2025, 9, 12, 11, 0, 0, 0, time.UTC), Status: "PLACED"},
		{ID: 3, BettorID: 7, MatchID: 999, SelectionID: 58805, RunnerName: "The Draw", RunnerType: string(odds.RunnerDraw), Side: bet.SideLay, Stake: money("2.50"), Odds: money("3.20"), CreatedAt: time.Date(2025, 9, 12, 11, 0, 0, 0, time.UTC), Status: "PLACED"},
		{ID: 4, BettorID: 12, MatchID: 90, SelectionID: 1096, RunnerName: "Arsenal", RunnerType: string(odds.RunnerHomeWin), Side: bet.SideBack, Stake: money("20.00"), Odds: money("1.40"), CreatedAt: time.Date(2025, 9, 5, 9, 0, 0, 0, time.UTC), Status: "SETTLED", RunnerOutcome: "WINNER", Won: boolPtr(true), ReturnedAmount: money("28.00")},
		{ID: 5, BettorID: 12, MatchID: 91, SelectionID: 48351, RunnerName: "Man Utd", RunnerType: string(odds.RunnerAwayWin), Side: bet.SideBack, Stake: money("10.00"), Odds: money("6.00"), CreatedAt: time.Date(2025, 9, 5, 9, 30, 0, 0, time.UTC), Status: "SETTLED", RunnerOutcome: "LOSER", Won: boolPtr(false), ReturnedAmount: money("0.00")},
		{ID: 6, BettorID: 12, MatchID: 100, SelectionID: 58805, RunnerName: "The Draw", RunnerType: string(odds.RunnerDraw), Side: bet.SideBack, Stake: money("5.00"), Odds: money("3.40"), CreatedAt: time.Date(2025, 9, 12, 12, 0, 0, 0, time.UTC), Status: "PLACED"},
	}
}

func oddsRow(marketID int64, runner odds.RunnerType, back, lay, last, matched string, at time.Time) OddsRow {
	return OddsRow{
		MarketID: marketID,
		Snapshot: odds.Snapshot{
			RunnerType:   string(runner),
			BackPrice:    money(back),
			LayPrice:     money(lay),
			LastTraded:   money(last),
			TotalMatched: money(matched),
			Timestamp:    at,
		},
	}
}

func money(v string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(v))
}

func intPtr(v int) *int {
	return &v
}

func boolPtr(v bool) *bool {
	return &v
}
