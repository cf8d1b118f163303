// Package icon renders UI symbols and feedback indicators in the configured variant.
package icon

import (
	"github.com/spf13/viper"
	"github.com/vidping/vidping/key"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, plain, squares}
}

// Icon identifies a UI symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Ready
	Waiting
	Ad
	Content
)

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji   string
	plain   string
	squares string
}

// Get retrieves the visual representation based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return ""
	}
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "🎉", plain: "Success", squares: "▣"},
	Fail:     {emoji: "💀", plain: "Error", squares: "▨"},
	Progress: {emoji: "👾", plain: "...", squares: "▧"},
	Ready:    {emoji: "🟢", plain: "[ready]", squares: "■"},
	Waiting:  {emoji: "⏳", plain: "[waiting]", squares: "□"},
	Ad:       {emoji: "📺", plain: "AD", squares: "▤"},
	Content:  {emoji: "🎬", plain: "CT", squares: "▥"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
