package users

import "time"

// Stats summarizes sign-up activity for the admin view.
type Stats struct {
	Total     int `json:"total"`
	Today     int `json:"today"`
	ThisWeek  int `json:"this_week"`
	ThisMonth int `json:"this_month"`
	Verified  int `json:"verified"`
}

// Stats counts registrations by period. Day boundaries come from the
// injected clock's local time.
func (s *Service) Stats() Stats {
	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	thisWeek := today.AddDate(0, 0, -7)
	thisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	st := Stats{Total: len(s.users)}
	for _, u := range s.users {
		if !u.CreatedAt.Before(today) {
			st.Today++
		}
		if !u.CreatedAt.Before(thisWeek) {
			st.ThisWeek++
		}
		if !u.CreatedAt.Before(thisMonth) {
			st.ThisMonth++
		}
		if u.IsVerified {
			st.Verified++
		}
	}
	return st
}
