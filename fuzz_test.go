package ebtree

import "testing"

func FuzzTree32InsertDeleteChurn(f *testing.F) {
	f.Add(uint32(1), uint32(2), uint32(1))
	f.Add(uint32(0), uint32(0xffffffff), uint32(42))

	f.Fuzz(func(t *testing.T, a, b, c uint32) {
		var tr Tree32[int]
		nodes := []*Node32[int]{
			{Key: a}, {Key: b}, {Key: c}, {Key: a},
		}
		for _, n := range nodes {
			tr.Insert(n)
		}
		if err := CheckInvariants32(&tr); err != nil {
			t.Fatalf("invariants broken after insert: %v", err)
		}
		for _, n := range nodes {
			tr.Delete(n)
			if err := CheckInvariants32(&tr); err != nil {
				t.Fatalf("invariants broken after delete: %v", err)
			}
		}
	})
}

func FuzzTreeMBInsertDeleteChurn(f *testing.F) {
	f.Add([]byte("aaa"), []byte("aab"))
	f.Add([]byte("\x00\x00\x00"), []byte("\xff\xff\xff"))

	f.Fuzz(func(t *testing.T, a, b []byte) {
		if len(a) == 0 || len(a) != len(b) {
			t.Skip("keys in one TreeMB must share a length")
		}

		var tr TreeMB[int]
		nodes := []*NodeMB[int]{
			{Key: a}, {Key: b}, {Key: append([]byte(nil), a...)},
		}
		for _, n := range nodes {
			tr.Insert(n)
		}
		if err := CheckInvariantsMB(&tr); err != nil {
			t.Fatalf("invariants broken after insert: %v", err)
		}
		for _, n := range nodes {
			tr.Delete(n)
			if err := CheckInvariantsMB(&tr); err != nil {
				t.Fatalf("invariants broken after delete: %v", err)
			}
		}
	})
}
