package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rdmgray/eplpal/internal/domain/bet"
	"github.com/rdmgray/eplpal/internal/domain/fixture"
)

func TestFixtureRepository_ListByMatchdaySorted(t *testing.T) {
	repo := NewFixtureRepository(SeedFixtures())

	items, err := repo.ListByMatchday(context.Background(), 5)
	require.NoError(t, err)

	got := make([]int64, 0, len(items))
	for _, item := range items {
		got = append(got, item.MatchID)
	}
	require.Equal(t, []int64{101, 100, 103, 102}, got)

	matchdays, err := repo.ListMatchdays(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, matchdays)
}

func TestFixtureRepository_UnassignedMatchdayNotListed(t *testing.T) {
	items := append(SeedFixtures(), fixture.Fixture{
		MatchID: 120, Date: "2025-09-27", HomeTeam: "Arsenal FC", AwayTeam: "Newcastle United FC",
		HomeTeamID: 57, AwayTeamID: 67, Status: "POSTPONED",
	})
	repo := NewFixtureRepository(items)

	matchdays, err := repo.ListMatchdays(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int{4, 5, 6}, matchdays)

	item, ok, err := repo.GetByID(context.Background(), 120)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 0, item.Matchday)
}

func TestFixtureRepository_ListByTeamCoversHomeAndAway(t *testing.T) {
	repo := NewFixtureRepository(SeedFixtures())

	items, err := repo.ListByTeam(context.Background(), 64)
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, int64(100), items[0].MatchID)
	require.Equal(t, int64(111), items[1].MatchID)
}

func TestOddsRepository_FindLatestPerRunnerType(t *testing.T) {
	repo := NewOddsRepository(SeedOddsMarkets(), SeedOddsRows())

	rows, err := repo.FindLatest(context.Background(), "Liverpool", "Chelsea")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byRunner := make(map[string]string, len(rows))
	for _, row := range rows {
		byRunner[row.RunnerType] = row.BackPrice.Decimal.String()
	}
	require.Equal(t, "1.75", byRunner["Home win"])
	require.Equal(t, "3.4", byRunner["Draw"])
	require.Equal(t, "1.62", byRunner["Over 2.5 Goals"])
	_, hasAway := byRunner["Away win"]
	require.False(t, hasAway)

	none, err := repo.FindLatest(context.Background(), "Chelsea", "Liverpool")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestOddsRepository_FindHistoryAscending(t *testing.T) {
	repo := NewOddsRepository(SeedOddsMarkets(), SeedOddsRows())

	rows, err := repo.FindHistory(context.Background(), "Liverpool", "Chelsea")
	require.NoError(t, err)
	require.Len(t, rows, 4)
	for i := 1; i < len(rows); i++ {
		require.False(t, rows[i].Timestamp.Before(rows[i-1].Timestamp))
	}
}

func TestBetRepository_ListByBettor(t *testing.T) {
	repo := NewBetRepository(SeedBets())
	ctx := context.Background()

	all, err := repo.ListByBettor(ctx, 7, bet.StatusAll)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, []int64{3, 2, 1}, []int64{all[0].ID, all[1].ID, all[2].ID})

	settled, err := repo.ListByBettor(ctx, 7, "SETTLED")
	require.NoError(t, err)
	require.Empty(t, settled)

	exists, err := repo.BettorExists(ctx, 7)
	require.NoError(t, err)
	require.True(t, exists)

	statuses, err := repo.ListStatuses(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"PLACED", "SETTLED"}, statuses)

	bettors, err := repo.ListBettorIDs(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{7, 12}, bettors)
}
