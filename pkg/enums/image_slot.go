package enums

import (
	"fmt"
	"strings"
)

// ImageSlot names the semantic position of a product image.
type ImageSlot string

const (
	ImageSlotFront  ImageSlot = "FRONT"
	ImageSlotBack   ImageSlot = "BACK"
	ImageSlotLeft   ImageSlot = "LEFT"
	ImageSlotRight  ImageSlot = "RIGHT"
	ImageSlotTop    ImageSlot = "TOP"
	ImageSlotBottom ImageSlot = "BOTTOM"
	ImageSlotDetail ImageSlot = "DETAIL"
	ImageSlotOther  ImageSlot = "OTHER"
)

var validImageSlots = []ImageSlot{
	ImageSlotFront,
	ImageSlotBack,
	ImageSlotLeft,
	ImageSlotRight,
	ImageSlotTop,
	ImageSlotBottom,
	ImageSlotDetail,
	ImageSlotOther,
}

// AllImageSlots returns the enumerated slot set in declaration order.
func AllImageSlots() []ImageSlot {
	out := make([]ImageSlot, len(validImageSlots))
	copy(out, validImageSlots)
	return out
}

// String implements fmt.Stringer.
func (s ImageSlot) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ImageSlot.
func (s ImageSlot) IsValid() bool {
	for _, candidate := range validImageSlots {
		if candidate == s {
			return true
		}
	}
	return false
}

// Repeatable reports whether a variation may carry multiple images in the slot.
func (s ImageSlot) Repeatable() bool {
	return s == ImageSlotDetail || s == ImageSlotOther
}

// ParseImageSlot converts raw input into an ImageSlot, case-insensitively.
func ParseImageSlot(value string) (ImageSlot, error) {
	normalized := ImageSlot(strings.ToUpper(strings.TrimSpace(value)))
	for _, candidate := range validImageSlots {
		if candidate == normalized {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid image slot %q", value)
}
