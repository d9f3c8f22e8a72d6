package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/filein/sidedock/internal/domain/geometry"
)

func TestParseEdge(t *testing.T) {
	tests := []struct {
		in     string
		want   Edge
		wantOK bool
	}{
		{in: "", want: EdgeNone, wantOK: true},
		{in: "left", want: EdgeLeft, wantOK: true},
		{in: " Right ", want: EdgeRight, wantOK: true},
		{in: "TOP", want: EdgeTop, wantOK: true},
		{in: "bottom", want: EdgeBottom, wantOK: true},
		{in: "diagonal", want: EdgeNone, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseEdge(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestEdgeStringRoundTrip(t *testing.T) {
	for _, e := range Edges {
		got, ok := ParseEdge(e.String())
		assert.True(t, ok)
		assert.Equal(t, e, got)
	}
	assert.Equal(t, "", EdgeNone.String())
}

func TestDockedAtNoneIsFloating(t *testing.T) {
	s := DockedAt(EdgeNone, geometry.Point{X: 5, Y: 5})

	assert.True(t, s.IsFloating())
	assert.Equal(t, geometry.Point{}, s.Offset)
}
