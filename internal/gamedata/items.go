package gamedata

// ItemDef is one item template loaded from items.json.
type ItemDef struct {
	ID       string `json:"id"`       // Unique identifier (e.g., "health_potion")
	Name     string `json:"name"`     // Display name
	Type     string `json:"type"`     // Category ("potion", "weapon", ...)
	Glyph    string `json:"glyph"`    // Single character for rendering
	Color    string `json:"color"`    // Hex color code
	Power    int    `json:"power"`    // Primary effect value (e.g., heal amount)
	Duration int    `json:"duration"` // Secondary effect value
	Value    int    `json:"value"`    // Gold value
}

// GlyphRune returns the glyph as a rune for rendering.
func (i *ItemDef) GlyphRune() rune {
	if len(i.Glyph) == 0 {
		return '?'
	}
	return rune(i.Glyph[0])
}

// ItemsFile represents the structure of items.json.
type ItemsFile struct {
	Items []ItemDef `json:"items"`
}

// LoadItems loads item definitions from the embedded items.json file.
func LoadItems() ([]ItemDef, error) {
	file, err := Load[ItemsFile]("items.json")
	if err != nil {
		return nil, err
	}
	return file.Items, nil
}
