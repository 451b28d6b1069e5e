package chi

import (
	"net/url"
	"reflect"
	"testing"
)

func TestBoolParam(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"", false},
		{"siblings", true},
		{"siblings=", true},
		{"siblings=true", true},
		{"siblings=1", true},
		{"siblings=false", false},
		{"other=true", false},
	}
	for _, tt := range tests {
		q, _ := url.ParseQuery(tt.raw)
		if got := boolParam(q, "siblings"); got != tt.want {
			t.Errorf("boolParam(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestPositiveParam(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 0},
		{"limit=20", 20},
		{"limit=1", 1},
		{"limit=0", 0},
		{"limit=-3", 0},
		{"limit=abc", 0},
		{"limit=2.5", 0},
	}
	for _, tt := range tests {
		q, _ := url.ParseQuery(tt.raw)
		if got := positiveParam(q, "limit"); got != tt.want {
			t.Errorf("positiveParam(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestRangeParam(t *testing.T) {
	tests := []struct {
		raw  string
		want []int
	}{
		{"", nil},
		{"lengthRange=300", []int{300}},
		{"lengthRange=500,100", []int{500, 100}},
		{"lengthRange=100,x", nil},
	}
	for _, tt := range tests {
		q, _ := url.ParseQuery(tt.raw)
		if got := rangeParam(q, "lengthRange"); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("rangeParam(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestPathParam(t *testing.T) {
	if got := pathParam("%CE%BB%CF%8C%CE%B3%CE%BF%CF%82"); got != "λόγος" {
		t.Errorf("pathParam = %q, want λόγος", got)
	}
	if got := pathParam("100%"); got != "100%" {
		t.Errorf("pathParam kept malformed escape as %q", got)
	}
}
