package models_test

import (
	"testing"

	"github.com/modforge/modforge/pkg/models"
)

func TestSelectionResolved(t *testing.T) {
	tests := []struct {
		name string
		in   models.Selection
		want models.Selection
	}{
		{
			name: "all forces the other three on",
			in:   models.Selection{All: true},
			want: models.Selection{Script: true, Tuning: true, Package: true, All: true},
		},
		{
			name: "all keeps already-set flags",
			in:   models.Selection{Script: true, All: true},
			want: models.Selection{Script: true, Tuning: true, Package: true, All: true},
		},
		{
			name: "without all nothing changes",
			in:   models.Selection{Tuning: true},
			want: models.Selection{Tuning: true},
		},
		{
			name: "empty stays empty",
			in:   models.Selection{},
			want: models.Selection{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Resolved(); got != tt.want {
				t.Errorf("Resolved() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSelectionAny(t *testing.T) {
	tests := []struct {
		name string
		in   models.Selection
		want bool
	}{
		{"empty", models.Selection{}, false},
		{"script only", models.Selection{Script: true}, true},
		{"tuning only", models.Selection{Tuning: true}, true},
		{"package only", models.Selection{Package: true}, true},
		{"all only", models.Selection{All: true}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Any(); got != tt.want {
				t.Errorf("Any() = %v, want %v", got, tt.want)
			}
		})
	}
}
