package isalnum

import "testing"

func TestSlice(t *testing.T) {
	s := Slice()
	var ones int
	for _, r := range s.Records {
		if r.Label == 1 {
			ones++
		}
	}
	if len(s.Records) != 256 || ones != 62 {
		t.Fatalf("%d records, %d alnum", len(s.Records), ones)
	}
	a := s.Records['a']
	want := []float32{1, 0, 0, 0, 0, 1, 1, 0}
	for i := range want {
		if a.Data[i] != want[i] {
			t.Fatalf("bits of 'a' = %v", a.Data)
		}
	}
}
