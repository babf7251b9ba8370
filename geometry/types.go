package geometry

import (
	"github.com/katalvlaran/cvmatch/colorid"
	"github.com/katalvlaran/cvmatch/group"
	"github.com/katalvlaran/cvmatch/permutation"
)

// Sticker is an index in [0, F) identifying one facelet.
type Sticker = int

// OrientationNumber is a per-sticker tag assigning a canonical label to
// each sticker of a piece, used to align observed colors with a piece's
// internal twist state.
type OrientationNumber = int

// RGB is a calibration or inference pixel sample, with components in
// [0, 1].
type RGB struct {
	R, G, B float64
}

// PixelRoleKind discriminates the three ways a pixel can be classified.
type PixelRoleKind int

const (
	// Unassigned pixels are ignored during calibration and inference.
	Unassigned PixelRoleKind = iota
	// WhiteBalanceRole pixels calibrate lighting for a color, not a sticker.
	WhiteBalanceRole
	// StickerRole pixels belong to one specific sticker.
	StickerRole
)

// PixelRole classifies one pixel of the image. Construct with
// NewUnassigned, NewWhiteBalance, or NewStickerRole.
type PixelRole struct {
	Kind    PixelRoleKind
	Color   colorid.Color // valid iff Kind == WhiteBalanceRole
	Sticker Sticker       // valid iff Kind == StickerRole
}

// NewUnassigned returns a PixelRole for a pixel outside the puzzle.
func NewUnassigned() PixelRole { return PixelRole{Kind: Unassigned} }

// NewWhiteBalance returns a PixelRole for a white-balance calibration pixel.
func NewWhiteBalance(c colorid.Color) PixelRole {
	return PixelRole{Kind: WhiteBalanceRole, Color: c}
}

// NewStickerRole returns a PixelRole for a pixel belonging to sticker s.
func NewStickerRole(s Sticker) PixelRole {
	return PixelRole{Kind: StickerRole, Sticker: s}
}

// Piece is a physical unit of the puzzle carrying multiple stickers that
// move together. Twist is the intra-piece permutation one orientation step
// applies to the piece's own stickers.
type Piece struct {
	Stickers []Sticker
	Twist    permutation.Permutation
}

// Orbit is an equivalence class of pieces closed under the group action;
// pieces in one orbit can only be permuted among themselves.
type Orbit struct {
	Pieces           []Piece
	OrientationCount int
}

// MaskEntry records which face a pixel belongs to, and whether it should be
// treated as a white-balance sample for that face. CVProcessor.Mask takes
// a plain slice of entries; there is no form for a pixel without a hint.
type MaskEntry struct {
	Face         uint32
	WhiteBalance bool
}

// Puzzle is the interface this core consumes from the puzzle-geometry
// collaborator: facelet count/coloring, the orbit decomposition, per-sticker
// orientation numbers, and the full permutation group.
type Puzzle interface {
	FaceletCount() int
	FaceletColors() []colorid.Color
	Orbits() []Orbit
	OrientationNumbers() []OrientationNumber
	PermutationGroup() *group.PermutationGroup
}
