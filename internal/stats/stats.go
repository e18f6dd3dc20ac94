// Package stats persists local play statistics. The file is guarded by an
// advisory lock so two client instances sharing a data directory cannot
// clobber each other's updates.
package stats

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

const (
	statsFile = "stats.yaml"
	lockFile  = "stats.lock"
)

// Stats accumulates results across puzzle sessions.
type Stats struct {
	Played        int    `yaml:"played"`
	WordsFound    int    `yaml:"words_found"`
	BestScore     int    `yaml:"best_score"`
	CurrentStreak int    `yaml:"current_streak"`
	BestStreak    int    `yaml:"best_streak"`
	LastPlayed    string `yaml:"last_played"`
}

// Load reads stats from dir. A missing file yields zero stats.
func Load(dir string) (Stats, error) {
	data, err := os.ReadFile(filepath.Join(dir, statsFile))
	if errors.Is(err, fs.ErrNotExist) {
		return Stats{}, nil
	}
	if err != nil {
		return Stats{}, fmt.Errorf("read stats: %w", err)
	}
	var s Stats
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Stats{}, fmt.Errorf("parse stats: %w", err)
	}
	return s, nil
}

// Update applies fn to the stored stats under the file lock and writes the
// result back. Returns the updated stats.
func Update(dir string, fn func(*Stats)) (Stats, error) {
	lock := flock.New(filepath.Join(dir, lockFile))
	if err := lock.Lock(); err != nil {
		return Stats{}, fmt.Errorf("lock stats: %w", err)
	}
	defer lock.Unlock()

	s, err := Load(dir)
	if err != nil {
		return Stats{}, err
	}
	fn(&s)

	data, err := yaml.Marshal(s)
	if err != nil {
		return Stats{}, fmt.Errorf("marshal stats: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, statsFile), data, 0o644); err != nil {
		return Stats{}, fmt.Errorf("write stats: %w", err)
	}
	return s, nil
}

// RecordSession folds one finished puzzle session into the stats. date is
// the puzzle date in YYYY-MM-DD form; playing the same date twice does not
// extend the streak.
func (s *Stats) RecordSession(date string, score, wordsFound int) {
	if s.LastPlayed != date {
		if isNextDay(s.LastPlayed, date) {
			s.CurrentStreak++
		} else {
			s.CurrentStreak = 1
		}
		s.Played++
		s.LastPlayed = date
	}
	s.WordsFound += wordsFound
	if score > s.BestScore {
		s.BestScore = score
	}
	if s.CurrentStreak > s.BestStreak {
		s.BestStreak = s.CurrentStreak
	}
}

func isNextDay(prev, next string) bool {
	p, err := time.Parse("2006-01-02", prev)
	if err != nil {
		return false
	}
	n, err := time.Parse("2006-01-02", next)
	if err != nil {
		return false
	}
	return p.AddDate(0, 0, 1).Equal(n)
}
