package entity

// Icon names the catalog frontend knows how to render.
const (
	IconScissors = "Scissors"
	IconHand     = "Hand"
	IconEye      = "Eye"
	IconPalette  = "Palette"
	IconZap      = "Zap"
	IconSparkles = "Sparkles"
)

type ServiceCategory struct {
	BaseSimple
	Name         string `db:"name"`
	Icon         string `db:"icon"`
	DisplayOrder int    `db:"display_order"`
}

// NormalizeIcon maps unknown icon values to the Sparkles fallback.
func NormalizeIcon(icon string) string {
	switch icon {
	case IconScissors, IconHand, IconEye, IconPalette, IconZap, IconSparkles:
		return icon
	default:
		return IconSparkles
	}
}
