package naming

import (
	"testing"

	"github.com/modforge/modforge/internal/config"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		isFolder bool
		rules    config.NamingRules
		want     string
	}{
		{
			name:     "no rules leaves name untouched",
			input:    "My Mod",
			isFolder: true,
			rules:    config.NamingRules{},
			want:     "My Mod",
		},
		{
			name:     "strip runs before convert, nothing left to convert",
			input:    "My Mod",
			isFolder: true,
			rules:    config.NamingRules{NoSpacesFolders: true, ConvertSpacesUnderscores: true},
			want:     "MyMod",
		},
		{
			name:     "convert alone replaces spaces with underscores",
			input:    "My Mod",
			isFolder: true,
			rules:    config.NamingRules{ConvertSpacesUnderscores: true},
			want:     "My_Mod",
		},
		{
			name:     "folder rule does not touch file names",
			input:    "My File",
			isFolder: false,
			rules:    config.NamingRules{NoSpacesFolders: true},
			want:     "My File",
		},
		{
			name:     "file rule does not touch folder names",
			input:    "My Folder",
			isFolder: true,
			rules:    config.NamingRules{NoSpacesFiles: true},
			want:     "My Folder",
		},
		{
			name:     "file rule strips file name spaces",
			input:    "My Cool File",
			isFolder: false,
			rules:    config.NamingRules{NoSpacesFiles: true},
			want:     "MyCoolFile",
		},
		{
			name:     "file strip plus convert leaves stripped name",
			input:    "My Cool File",
			isFolder: false,
			rules:    config.NamingRules{NoSpacesFiles: true, ConvertSpacesUnderscores: true},
			want:     "MyCoolFile",
		},
		{
			name:     "folder strip with convert still converts file names",
			input:    "My File",
			isFolder: false,
			rules:    config.NamingRules{NoSpacesFolders: true, ConvertSpacesUnderscores: true},
			want:     "My_File",
		},
		{
			name:     "multiple consecutive spaces all convert",
			input:    "A  B",
			isFolder: true,
			rules:    config.NamingRules{ConvertSpacesUnderscores: true},
			want:     "A__B",
		},
		{
			name:     "empty name stays empty",
			input:    "",
			isFolder: true,
			rules:    config.NamingRules{NoSpacesFolders: true, ConvertSpacesUnderscores: true},
			want:     "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Clean(tt.input, tt.isFolder, tt.rules); got != tt.want {
				t.Errorf("Clean(%q, isFolder=%v) = %q, want %q", tt.input, tt.isFolder, got, tt.want)
			}
		})
	}
}
