package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/filein/sidedock/internal/domain/geometry"
)

// parseInts splits s on commas or an "x" and parses exactly n integers.
func parseInts(s string, n int) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == 'x' || r == 'X' || r == ' '
	})
	if len(fields) != n {
		return nil, fmt.Errorf("expected %d numbers, got %q", n, s)
	}

	out := make([]int, n)
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

// pointFlag is a pflag.Value for "x,y".
type pointFlag struct {
	point geometry.Point
	set   bool
}

func (f *pointFlag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.point.X, f.point.Y)
}

func (f *pointFlag) Set(s string) error {
	v, err := parseInts(s, 2)
	if err != nil {
		return err
	}
	f.point = geometry.Point{X: v[0], Y: v[1]}
	f.set = true
	return nil
}

func (*pointFlag) Type() string { return "x,y" }

// pointListFlag collects repeated "x,y" values.
type pointListFlag struct {
	points []geometry.Point
}

func (f *pointListFlag) String() string {
	parts := make([]string, len(f.points))
	for i, p := range f.points {
		parts[i] = fmt.Sprintf("%d,%d", p.X, p.Y)
	}
	return strings.Join(parts, " ")
}

func (f *pointListFlag) Set(s string) error {
	var p pointFlag
	if err := p.Set(s); err != nil {
		return err
	}
	f.points = append(f.points, p.point)
	return nil
}

func (*pointListFlag) Type() string { return "x,y" }

// sizeFlag is a pflag.Value for "WxH".
type sizeFlag struct {
	size geometry.Size
	set  bool
}

func (f *sizeFlag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%dx%d", f.size.Width, f.size.Height)
}

func (f *sizeFlag) Set(s string) error {
	v, err := parseInts(s, 2)
	if err != nil {
		return err
	}
	if v[0] < 0 || v[1] < 0 {
		return fmt.Errorf("size must not be negative: %q", s)
	}
	f.size = geometry.NewSize(v[0], v[1])
	f.set = true
	return nil
}

func (*sizeFlag) Type() string { return "WxH" }

// rectFlag is a pflag.Value for "x,y,WxH" or "x,y,w,h".
type rectFlag struct {
	rect geometry.Rect
	set  bool
}

func (f *rectFlag) String() string {
	if !f.set {
		return ""
	}
	return fmt.Sprintf("%d,%d,%dx%d", f.rect.X, f.rect.Y, f.rect.Width, f.rect.Height)
}

func (f *rectFlag) Set(s string) error {
	v, err := parseInts(s, 4)
	if err != nil {
		return err
	}
	if v[2] < 0 || v[3] < 0 {
		return fmt.Errorf("size must not be negative: %q", s)
	}
	f.rect = geometry.NewRect(v[0], v[1], v[2], v[3])
	f.set = true
	return nil
}

func (*rectFlag) Type() string { return "x,y,WxH" }
