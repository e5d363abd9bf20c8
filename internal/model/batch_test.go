package model

import "testing"

func TestHasOutputFile(t *testing.T) {
	tests := []struct {
		name string
		meta BatchMetadata
		want bool
	}{
		{
			name: "With output file",
			meta: BatchMetadata{
				State:          "JOB_STATE_SUCCEEDED",
				OutputFileName: "files/output-abc",
			},
			want: true,
		},
		{
			name: "Without output file",
			meta: BatchMetadata{
				State: "JOB_STATE_SUCCEEDED",
				Dest:  "&{FileName:}",
			},
			want: false,
		},
		{
			name: "Zero value",
			meta: BatchMetadata{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.meta.HasOutputFile(); got != tt.want {
				t.Errorf("HasOutputFile() = %v, want %v", got, tt.want)
			}
		})
	}
}
