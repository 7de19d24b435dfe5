package flagx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate flag and value",
			args:    []string{"-a", ":9090", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", ":9090"},
		},
		{
			name:    "combined flag=value",
			args:    []string{"-d=postgres://db", "-s=key"},
			allowed: []string{"-d"},
			want:    []string{"-d=postgres://db"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-a", "-d", "dsn"},
			allowed: []string{"-a", "-d"},
			want:    []string{"-a", "-d", "dsn"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "addr"},
			allowed: []string{"-z"},
			want:    []string{},
		},
		{
			name:    "empty args",
			args:    []string{},
			allowed: []string{"-a"},
			want:    []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterArgs(tc.args, tc.allowed)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("FilterArgs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
