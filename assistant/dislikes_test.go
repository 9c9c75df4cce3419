package assistant

import (
	"reflect"
	"testing"
)

func TestIsDislikeMessage(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"i don't like milk", true},
		{"I DISLIKE cheese", true},
		{"i hate spinach", true},
		{"remove milk", true},
		{"i don't want eggs", true},
		{"show me foods", false},
		{"i like milk", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsDislikeMessage(tc.text); got != tc.want {
			t.Errorf("IsDislikeMessage(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestExtractDislikedItems(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		// The capture stops at the first "and"; the trailing item is the
		// known limitation of the pattern.
		{"i don't like milk and dryfruit", []string{"milk"}},
		{"i hate spinach.", []string{"spinach"}},
		{"remove milk", []string{"milk"}},
		{"i dislike cheese. i hate butter", []string{"cheese", "butter"}},
		{"i don't want eggs", []string{"eggs"}},
		{"i hate", nil},
		{"hello", nil},
	}
	for _, tc := range cases {
		got := ExtractDislikedItems(tc.text)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("ExtractDislikedItems(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
