package game

// Kind identifies one of the seven piece shapes. The numeric value doubles as
// the color index written into the board when a piece locks.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindJ
	KindL
	KindS
	KindZ
)

// NumKinds is the number of distinct piece kinds.
const NumKinds = 7

// Frame is the 4x4 occupancy pattern of a kind at one rotation, indexed [row][col].
type Frame [4][4]bool

// Rotation frames are authored by hand, not computed. I, S and Z repeat two
// frames and O repeats one so that every kind cycles through four indices.
var framePatterns = [NumKinds][4][4]string{
	KindI: {
		{"....", "####", "....", "...."},
		{".#..", ".#..", ".#..", ".#.."},
		{"....", "####", "....", "...."},
		{".#..", ".#..", ".#..", ".#.."},
	},
	KindO: {
		{"##..", "##..", "....", "...."},
		{"##..", "##..", "....", "...."},
		{"##..", "##..", "....", "...."},
		{"##..", "##..", "....", "...."},
	},
	KindT: {
		{".#..", "###.", "....", "...."},
		{".#..", ".##.", ".#..", "...."},
		{"....", "###.", ".#..", "...."},
		{".#..", "##..", ".#..", "...."},
	},
	KindJ: {
		{"#...", "###.", "....", "...."},
		{".##.", ".#..", ".#..", "...."},
		{"....", "###.", "..#.", "...."},
		{".#..", ".#..", "##..", "...."},
	},
	KindL: {
		{"..#.", "###.", "....", "...."},
		{".#..", ".#..", ".##.", "...."},
		{"....", "###.", "#...", "...."},
		{"##..", ".#..", ".#..", "...."},
	},
	KindS: {
		{".##.", "##..", "....", "...."},
		{".#..", ".##.", "..#.", "...."},
		{".##.", "##..", "....", "...."},
		{".#..", ".##.", "..#.", "...."},
	},
	KindZ: {
		{"##..", ".##.", "....", "...."},
		{"..#.", ".##.", ".#..", "...."},
		{"##..", ".##.", "....", "...."},
		{"..#.", ".##.", ".#..", "...."},
	},
}

var frames [NumKinds][4]Frame

func init() {
	for kind, rotations := range framePatterns {
		for rotation, rows := range rotations {
			for r, line := range rows {
				for c, ch := range line {
					frames[kind][rotation][r][c] = ch == '#'
				}
			}
		}
	}
}

// FrameOf returns the occupancy pattern for kind at rotation. The rotation is
// reduced modulo 4.
func FrameOf(kind Kind, rotation int) Frame {
	return frames[kind][((rotation%4)+4)%4]
}

// BlockCount returns the number of filled cells in f.
func BlockCount(f Frame) int {
	n := 0
	for _, row := range f {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// Valid reports whether k names one of the seven kinds.
func (k Kind) Valid() bool {
	return k >= 0 && k < NumKinds
}

func (k Kind) String() string {
	if !k.Valid() {
		return "?"
	}
	return "IOTJLSZ"[k : k+1]
}
