package edgelist

import (
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "SingleEdge",
			input: "2 1\n1 2 5",
			want:  "1 2 5\n",
		},
		{
			name:  "Path",
			input: "3 2\n1 2 4\n2 3 7",
			want:  "1 2 4\n2 3 7\n",
		},
		{
			name:  "NoEdges",
			input: "3 0",
			want:  "",
		},
		{
			name:  "ReversedInputCanonicalized",
			input: "3 1\n3 1 8",
			want:  "1 3 8\n",
		},
	}

	for _, tt := range tests {
		for repName, newGraph := range representations {
			t.Run(tt.name+"/"+repName, func(t *testing.T) {
				rows, err := Parse(strings.NewReader(tt.input))
				if err != nil {
					t.Fatal(err)
				}
				g := newGraph()
				if err := Build(rows, g); err != nil {
					t.Fatal(err)
				}

				var sb strings.Builder
				if err := Write(&sb, g); err != nil {
					t.Fatalf("Write() error = %v", err)
				}
				if sb.String() != tt.want {
					t.Errorf("Write() = %q, want %q", sb.String(), tt.want)
				}
			})
		}
	}
}
