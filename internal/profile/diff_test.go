package profile

import "testing"

func TestDiffPalettes(t *testing.T) {
	tests := []struct {
		name        string
		oldData     string
		newData     string
		identical   bool
		wantAdded   int
		wantRemoved int
	}{
		{
			name:      "Identical",
			oldData:   "{\n\"a\": 1\n}\n",
			newData:   "{\n\"a\": 1\n}\n",
			identical: true,
		},
		{
			name:        "One line changed",
			oldData:     "{\n\"primary\": \"#111111\"\n}\n",
			newData:     "{\n\"primary\": \"#222222\"\n}\n",
			wantAdded:   1,
			wantRemoved: 1,
		},
		{
			name:        "Line added",
			oldData:     "{\n\"a\": 1\n}\n",
			newData:     "{\n\"a\": 1,\n\"b\": 2\n}\n",
			wantAdded:   2,
			wantRemoved: 1,
		},
		{
			name:        "Old empty",
			oldData:     "",
			newData:     "line one\nline two\n",
			wantAdded:   2,
			wantRemoved: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := DiffPalettes([]byte(tt.oldData), []byte(tt.newData))
			if diff.Identical != tt.identical {
				t.Fatalf("Identical = %v, want %v", diff.Identical, tt.identical)
			}
			if tt.identical {
				return
			}
			if diff.LinesAdded != tt.wantAdded || diff.LinesRemoved != tt.wantRemoved {
				t.Errorf("diff = +%d/-%d, want +%d/-%d",
					diff.LinesAdded, diff.LinesRemoved, tt.wantAdded, tt.wantRemoved)
			}
		})
	}
}
