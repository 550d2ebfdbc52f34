package component

import "github.com/lixenwraith/lightbeam/core"

// InventoryComponent tracks which beam colors the player may still fire this level
type InventoryComponent struct {
	Allowed [core.LightColorCount]bool
	Used    [core.LightColorCount]bool
	Current core.LightColor
}

// Available reports whether a color can be fired
func (i *InventoryComponent) Available(c core.LightColor) bool {
	if c >= core.LightColorCount {
		return false
	}
	return i.Allowed[c] && !i.Used[c]
}

// Consume marks a color as spent, returns false if it was not available
func (i *InventoryComponent) Consume(c core.LightColor) bool {
	if !i.Available(c) {
		return false
	}
	i.Used[c] = true
	return true
}

// Refill restores every allowed color
func (i *InventoryComponent) Refill() {
	i.Used = [core.LightColorCount]bool{}
}
