package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("match_id", "home_team").
		From("fixtures").
		Where(Eq("matchday", 5), IsNotNull("match_date")).
		OrderBy("match_date", "match_id").
		Limit(10).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT match_id, home_team FROM fixtures WHERE matchday = $1 AND match_date IS NOT NULL ORDER BY match_date, match_id LIMIT 10"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 1 || args[0] != 5 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_OrAndExprNumberSequentially(t *testing.T) {
	query, args, err := SelectDistinct("o.runner_type").
		From("odds o").
		Join("matches m ON m.id = o.match_id").
		Where(
			Expr("m.home_team = ? AND m.away_team = ?", "Liverpool", "Chelsea"),
			Or(Eq("home_team_id", int64(64)), Eq("away_team_id", int64(64))),
		).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT DISTINCT o.runner_type FROM odds o JOIN matches m ON m.id = o.match_id WHERE m.home_team = $1 AND m.away_team = $2 AND (home_team_id = $3 OR away_team_id = $4)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[0] != "Liverpool" || args[3] != int64(64) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_EmptyInMatchesNothing(t *testing.T) {
	query, args, err := Select("id").From("bets").Where(In("match_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM bets WHERE 1=0" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 0 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilder_RequiresTable(t *testing.T) {
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatalf("expected error for missing table")
	}
}
