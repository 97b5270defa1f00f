package types

// Model distinguishes monochrome (DMG) from color-mode (CGB) behavior,
// selected by the cartridge header's compatibility byte (0x0143).
type Model uint8

const (
	ModelDMG Model = iota
	ModelCGB
)

func (m Model) String() string {
	if m == ModelCGB {
		return "CGB"
	}
	return "DMG"
}
