package stats

import "testing"

func TestLoad_MissingFileIsZero(t *testing.T) {
	s, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", s)
	}
}

func TestUpdate_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	_, err := Update(dir, func(s *Stats) {
		s.RecordSession("2026-08-30", 42, 5)
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := Load(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Played != 1 || got.WordsFound != 5 || got.BestScore != 42 {
		t.Fatalf("unexpected stats %+v", got)
	}
}

func TestRecordSession_StreakExtendsOnConsecutiveDays(t *testing.T) {
	var s Stats
	s.RecordSession("2026-08-29", 10, 1)
	s.RecordSession("2026-08-30", 12, 2)
	if s.CurrentStreak != 2 {
		t.Fatalf("expected streak 2, got %d", s.CurrentStreak)
	}
	if s.BestStreak != 2 {
		t.Fatalf("expected best streak 2, got %d", s.BestStreak)
	}
}

func TestRecordSession_StreakResetsOnGap(t *testing.T) {
	var s Stats
	s.RecordSession("2026-08-25", 10, 1)
	s.RecordSession("2026-08-30", 12, 2)
	if s.CurrentStreak != 1 {
		t.Fatalf("expected streak reset to 1, got %d", s.CurrentStreak)
	}
}

func TestRecordSession_SameDayDoesNotExtendStreak(t *testing.T) {
	var s Stats
	s.RecordSession("2026-08-30", 10, 1)
	s.RecordSession("2026-08-30", 20, 3)
	if s.CurrentStreak != 1 {
		t.Fatalf("expected streak 1, got %d", s.CurrentStreak)
	}
	if s.Played != 1 {
		t.Fatalf("expected played 1, got %d", s.Played)
	}
	if s.WordsFound != 4 {
		t.Fatalf("expected 4 words found, got %d", s.WordsFound)
	}
	if s.BestScore != 20 {
		t.Fatalf("expected best score 20, got %d", s.BestScore)
	}
}
