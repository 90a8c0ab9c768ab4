package postgres

import (
	"testing"

	"flightetl/internal/storage"
)

func TestPgIdentQuoting(t *testing.T) {
	if got, want := pgIdent("to"), `"to"`; got != want {
		t.Fatalf("pgIdent = %s, want %s", got, want)
	}
	if got, want := pgIdent(`we"ird`), `"we""ird"`; got != want {
		t.Fatalf("pgIdent = %s, want %s", got, want)
	}
	if got, want := pgFQN("public.flights"), `"public"."flights"`; got != want {
		t.Fatalf("pgFQN = %s, want %s", got, want)
	}
}

func TestKeyCondition(t *testing.T) {
	got := keyCondition([]string{"flight_code", "to"})
	want := `t."flight_code" = s."flight_code" AND t."to" = s."to"`
	if got != want {
		t.Fatalf("keyCondition = %s, want %s", got, want)
	}
}

func TestCreateTableSQL(t *testing.T) {
	cfg := storage.Config{
		Table:   "public.flights",
		Columns: []string{"airline_code", "flight_code", "to", storage.FingerprintColumn},
	}

	got := createTableSQL(cfg)
	want := `CREATE TABLE IF NOT EXISTS "public"."flights" ` +
		`("airline_code" text, "flight_code" integer NOT NULL, "to" text, "row_hash" bigint)`
	if got != want {
		t.Fatalf("createTableSQL =\n%s\nwant\n%s", got, want)
	}
}
