package datasets

// Slice is a Loader over records already in memory. Records with nil Data
// stand for entries that failed to decode.
type Slice struct {
	Records []Record
	pos     int
}

func (s *Slice) HasNext() bool {
	return s.pos < len(s.Records)
}

func (s *Slice) Next() (Record, bool) {
	if s.pos >= len(s.Records) {
		return Record{}, false
	}
	rec := s.Records[s.pos]
	s.pos++
	return rec, rec.Data != nil
}
