package domain

// AccountState records which posts of an account have already been
// processed. Processed never contains duplicates and MaxID never
// decreases; once any post has been marked, MaxID is itself a member of
// Processed.
type AccountState struct {
	AccountID AccountID
	Nickname  string
	Processed []int64
	MaxID     int64
}

func (s AccountState) Empty() bool {
	return len(s.Processed) == 0
}

func (s AccountState) Seen(mid int64) bool {
	for _, known := range s.Processed {
		if known == mid {
			return true
		}
	}
	return false
}

// Mark records mid as processed. Already-known ids are ignored and the
// high-water mark only ever moves forward.
func (s *AccountState) Mark(mid int64) {
	if s.Seen(mid) {
		return
	}
	s.Processed = append(s.Processed, mid)
	if mid > s.MaxID {
		s.MaxID = mid
	}
}
