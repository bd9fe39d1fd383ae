package mascot

import "fmt"

// Frame is one ASCII-art image: rows of characters, one character per cell.
// Rows may be ragged; missing cells are blank.
type Frame []string

// At returns the character at column x of row y, or ' ' when out of range.
func (f Frame) At(x, y int) rune {
	if y < 0 || y >= len(f) || x < 0 {
		return ' '
	}
	i := 0
	for _, ch := range f[y] {
		if i == x {
			return ch
		}
		i++
	}
	return ' '
}

// FrameSet is an ordered, named collection of frames.
type FrameSet struct {
	names  []string
	frames map[string]Frame
}

// NamedFrame pairs a frame with its name for building a FrameSet.
type NamedFrame struct {
	Name  string
	Frame Frame
}

// NewFrameSet builds a FrameSet preserving the given order.
// Duplicate names are rejected.
func NewFrameSet(entries ...NamedFrame) (FrameSet, error) {
	set := FrameSet{frames: make(map[string]Frame, len(entries))}
	for _, e := range entries {
		if e.Name == "" {
			return FrameSet{}, fmt.Errorf("frame name must not be empty")
		}
		if _, dup := set.frames[e.Name]; dup {
			return FrameSet{}, fmt.Errorf("duplicate frame %q", e.Name)
		}
		set.names = append(set.names, e.Name)
		set.frames[e.Name] = e.Frame
	}
	return set, nil
}

// Names returns frame names in declaration order.
func (s FrameSet) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Frame looks up a frame by name.
func (s FrameSet) Frame(name string) (Frame, bool) {
	f, ok := s.frames[name]
	return f, ok
}

// Len returns the number of frames.
func (s FrameSet) Len() int { return len(s.names) }

// MiniFrame is the small rocket shown next to the quiz title.
const MiniFrame = "mini_rocket"

var defaultFrames = mustFrameSet(
	NamedFrame{"idle_1", Frame{
		"      .A.      ",
		"     /RRR\\     ",
		"    |RRSRR|    ",
		"    |RswsR|    ",
		"    |RsasR|    ",
		"    |RRSRR|    ",
		"   /RRRRRRR\\   ",
		"  /RRRRRRRRR\\  ",
		" |RR|RRRRR|RR| ",
		"  ^ | | | | ^  ",
		"      f f      ",
		"", "", "",
	}},
	NamedFrame{"idle_2", Frame{
		"      .A.      ",
		"     /RRR\\     ",
		"    |RRSRR|    ",
		"    |RswsR|    ",
		"    |RsasR|    ",
		"    |RRSRR|    ",
		"   /RRRRRRR\\   ",
		"  /RRRRRRRRR\\  ",
		" |RR|RRRRR|RR| ",
		"  ^ | | | | ^  ",
		"     f F f     ",
		"      f f      ",
		"", "",
	}},
	NamedFrame{"correct_1", Frame{
		"      .A.      ",
		"     /RRR\\     ",
		"    |RRSRR|    ",
		"    |RswsR|    ",
		"    |Rs^sR|    ",
		"    |RRSRR|    ",
		"   /RRRRRRR\\   ",
		"  /RRRRRRRRR\\  ",
		" |RR|RRRRR|RR| ",
		"  ^ | | | | ^  ",
		"    f F F f    ",
		"   (fFF FFFf)   ",
		"    (fFFFFf)    ",
		"     (fff)     ",
	}},
	NamedFrame{"correct_2", Frame{
		"      .A.      ",
		"     /RRR\\     ",
		"    |RRSRR|    ",
		"    |RswsR|    ",
		"    |Rs^sR|    ",
		"    |RRSRR|    ",
		"   /RRRRRRR\\   ",
		"  /RRRRRRRRR\\  ",
		" |RR|RRRRR|RR| ",
		"", "", "", "", "",
	}},
	NamedFrame{"correct_3", Frame{
		"      .A.      ",
		"     /RRR\\     ",
		"    |RRSRR|    ",
		"    |RswsR|    ",
		"    |Rs^sR|    ",
		"    |RRSRR|    ",
		"", "", "", "", "", "", "", "",
	}},
	NamedFrame{"correct_4", Frame{
		"      .A.      ",
		"     /RRR\\     ",
		"    |RRSRR|    ",
		"", "", "", "", "", "", "", "", "", "", "",
	}},
	NamedFrame{"incorrect_1", Frame{
		"      .A.      ",
		"     /RRR\\     ",
		"    |RRSRR|    ",
		"    |RswsR|    ",
		" o  |RsasR|  o ",
		"    |RRSRR|    ",
		"   /RRRRRRR\\   ",
		"  /RRRRRRRRR\\  ",
		" |RR|RRRRR|RR| ",
		"  ^ | | | | ^  ",
		"    o O o      ",
		"", "", "",
	}},
	NamedFrame{"incorrect_2", Frame{
		"      .A.      ",
		"     /cR \\     ",
		"    |RCS c|    ",
		"    | sw R|    ",
		"  o | sa R| O  ",
		"    |cCS R|    ",
		"   /cRRRRC \\   ",
		"  /RRC cCR R\\  ",
		" |cR|R R R|Cr| ",
		"  ^ |o|O|o| ^  ",
		"  0 O o o O 0  ",
		"   o O 0 O o   ",
		"", "",
	}},
	NamedFrame{"incorrect_3", Frame{
		"               ",
		"      c C      ",
		"  o  C c O   c ",
		"    c   C      ",
		" O   C c   o   ",
		"   c       C   ",
		"  C   o O   c  ",
		" o  c  0  C  O ",
		"      O o      ",
		" C  o  c  0    ",
		"   0 O o O 0   ",
		"    o O 0 O    ",
		"", "",
	}},
	NamedFrame{"incorrect_4", Frame{
		"               ",
		"               ",
		"   c      C    ",
		"  o     c      ",
		"      C     o  ",
		" C             ",
		"       o       ",
		"   o      C    ",
		"  c            ",
		"         0     ",
		"    o     c    ",
		"               ",
		"", "",
	}},
	NamedFrame{MiniFrame, Frame{
		"  A  ",
		" /R\\ ",
		"|RSR|",
		"|RRR|",
		" FfF ",
	}},
)

func mustFrameSet(entries ...NamedFrame) FrameSet {
	set, err := NewFrameSet(entries...)
	if err != nil {
		panic(err)
	}
	return set
}

// DefaultFrames returns the built-in rocket mascot frames.
func DefaultFrames() FrameSet { return defaultFrames }

// Animation names understood by the quiz page.
const (
	AnimationIdle      = "idle"
	AnimationCorrect   = "correct"
	AnimationIncorrect = "incorrect"
)

// Animations returns the frame names making up each quiz page animation.
func Animations() map[string][]string {
	return map[string][]string{
		AnimationIdle:      {"idle_1", "idle_2"},
		AnimationCorrect:   {"correct_1", "correct_2", "correct_3", "correct_4"},
		AnimationIncorrect: {"incorrect_1", "incorrect_2", "incorrect_3", "incorrect_4"},
	}
}

// FileName returns the generated image name for a frame.
func FileName(frameName string) string { return FilePrefix + frameName + FileExt }

// Output naming shared by the generator and the web UI.
const (
	FilePrefix   = "mascot_"
	FileExt      = ".png"
	MiniFileName = "mini_rocket.png"
)
