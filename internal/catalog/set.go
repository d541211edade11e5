package catalog

import (
	"fmt"
	"time"
)

// releaseDateLayout is the date form the set feed uses, e.g. "2019/10/11".
const releaseDateLayout = "2006/01/02"

// CardSet is one product release: a code like "WTR", the printed name, and
// the identifier range its cards occupy.
type CardSet struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date,omitempty"`
	OutOfPrint  bool   `json:"out_of_print,omitempty"`
	FirstID     string `json:"first_id,omitempty"`
	LastID      string `json:"last_id,omitempty"`
}

// Released parses the set's release date. Sets without a date return a
// zero time and false.
func (s *CardSet) Released() (time.Time, bool) {
	if s.ReleaseDate == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(releaseDateLayout, s.ReleaseDate)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (s *CardSet) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Code)
}

func (s *CardSet) validate() error {
	if s.Code == "" {
		return fmt.Errorf("set %q has no code", s.Name)
	}
	if s.Name == "" {
		return fmt.Errorf("set %q has no name", s.Code)
	}
	if s.ReleaseDate != "" {
		if _, err := time.Parse(releaseDateLayout, s.ReleaseDate); err != nil {
			return fmt.Errorf("set %s has unparseable release date %q", s.Code, s.ReleaseDate)
		}
	}
	return nil
}
