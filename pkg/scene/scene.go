// Package scene defines the JSON payloads exchanged with the Adventure of
// Textland server. A Payload is a read-only snapshot of one game turn; the
// client never mutates it and re-derives all visible state from it.
package scene

import "strings"

// Feature is an interactable fixture in the current room, e.g. a crate
// that can be opened or rocks that can be searched.
type Feature struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Action string `json:"action"` // verb composed into "<action> <id>"
}

// Item is an item lying in the current room.
type Item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NPC is a character present in the current room.
type NPC struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// InventoryItem is one entry of the player's backpack listing.
type InventoryItem struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	EquipSlot string `json:"equip_slot,omitempty"` // empty when not equippable
}

// MapLocation is one known location on a zone or world map.
type MapLocation struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	X       int               `json:"x"`
	Y       int               `json:"y"`
	Visited bool              `json:"visited"`
	Exits   map[string]string `json:"exits,omitempty"` // direction → location id
}

// ZoneMap is the current zone's location subset, redrawn every turn in the
// side panel.
type ZoneMap struct {
	Title     string        `json:"title,omitempty"`
	Locations []MapLocation `json:"locations"`
}

// CityMap is a dense rectangular grid of cell-type rows, sent when the
// player is inside a city (map_type == "city").
type CityMap struct {
	Title   string            `json:"title,omitempty"`
	Rows    []string          `json:"rows"`             // one rune per cell
	Legend  map[string]string `json:"legend,omitempty"` // cell rune → label
	PlayerX int               `json:"player_x"`
	PlayerY int               `json:"player_y"`
}

// WorldMap is the response of /api/get_world_map.
type WorldMap struct {
	Locations         []MapLocation `json:"locations"`
	CurrentLocationID string        `json:"current_location_id"`
}

// Payload is the scene snapshot the server returns for every processed
// action, character creation, load and resume. Every field is optional;
// absent fields render as placeholders rather than failing the render.
type Payload struct {
	Message           string `json:"message,omitempty"`
	LocationName      string `json:"location_name,omitempty"`
	Description       string `json:"description,omitempty"`
	CurrentLocationID string `json:"player_current_location_id,omitempty"`

	PlayerName        string `json:"player_name,omitempty"`
	PlayerClassName   string `json:"player_class_name,omitempty"`
	PlayerSpeciesName string `json:"player_species_name,omitempty"`
	PlayerHP          *int   `json:"player_hp,omitempty"`
	PlayerMaxHP       *int   `json:"player_max_hp,omitempty"`
	PlayerLevel       *int   `json:"player_level,omitempty"`
	PlayerXP          *int   `json:"player_xp,omitempty"`
	PlayerXPToNext    *int   `json:"player_xp_to_next_level,omitempty"`
	PlayerAttack      *int   `json:"player_attack_power,omitempty"`
	PlayerCoins       *int   `json:"player_coins,omitempty"`

	// Equipment maps slot → item name, plus "<slot>_id" → item id for
	// occupied slots.
	Equipment map[string]string `json:"player_equipment,omitempty"`

	Features  []Feature       `json:"interactable_features,omitempty"`
	RoomItems []Item          `json:"room_items,omitempty"`
	NPCs      []NPC           `json:"npcs_in_room,omitempty"`
	Exits     []string        `json:"available_exits,omitempty"`
	Actions   []string        `json:"available_actions,omitempty"`
	Inventory []InventoryItem `json:"inventory_list,omitempty"`

	MapLines []string `json:"map_lines,omitempty"` // pre-formatted, printed verbatim
	MapType  string   `json:"map_type,omitempty"`  // "city" switches the side panel
	ZoneMap  *ZoneMap `json:"zone_map,omitempty"`
	CityMap  *CityMap `json:"city_map,omitempty"`

	CanSaveInCity    bool `json:"can_save_in_city,omitempty"`
	AutoEquipEnabled bool `json:"auto_equip_enabled,omitempty"`
}

// EquipmentSlots lists the character panel slots in display order.
var EquipmentSlots = []string{
	"head", "shoulders", "chest", "hands",
	"legs", "feet", "main_hand", "off_hand",
	"neck", "back", "trinket1", "trinket2",
}

// SlotPrefixes are the short labels shown before each slot's item name.
var SlotPrefixes = map[string]string{
	"head": "H", "shoulders": "S", "chest": "C", "hands": "G",
	"legs": "L", "feet": "F", "main_hand": "MH", "off_hand": "OH",
	"neck": "N", "back": "B", "trinket1": "T1", "trinket2": "T2",
}

// SlotPrefix returns the short label for a slot, falling back to the
// slot's first letter uppercased.
func SlotPrefix(slot string) string {
	if p, ok := SlotPrefixes[slot]; ok {
		return p
	}
	if slot == "" {
		return "?"
	}
	return strings.ToUpper(slot[:1])
}

// EquippedItemID returns the item id occupying a slot, or "" when the
// slot is empty. Occupied slots carry a parallel "<slot>_id" key.
func (p *Payload) EquippedItemID(slot string) string {
	if p.Equipment == nil {
		return ""
	}
	return p.Equipment[slot+"_id"]
}

// SlotItemName returns the display name for a slot, "Empty" when vacant.
func (p *Payload) SlotItemName(slot string) string {
	if p.Equipment == nil {
		return "Empty"
	}
	name := p.Equipment[slot]
	if name == "" || name == "Empty" {
		return "Empty"
	}
	return name
}

// HasExit reports whether a direction is currently walkable.
func (p *Payload) HasExit(direction string) bool {
	for _, e := range p.Exits {
		if strings.EqualFold(e, direction) {
			return true
		}
	}
	return false
}

// HasAction reports whether a generic action is currently offered.
func (p *Payload) HasAction(action string) bool {
	for _, a := range p.Actions {
		if strings.EqualFold(a, action) {
			return true
		}
	}
	return false
}
