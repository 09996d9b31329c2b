package shared

// Slot identifies where a piece of equipment sits on a character.
type Slot string

const (
	SlotNone      Slot = ""
	SlotWeapon    Slot = "weapon"
	SlotHead      Slot = "head"
	SlotBody      Slot = "body"
	SlotFoot      Slot = "foot"
	SlotShield    Slot = "shield"
	SlotAccessory Slot = "accessory"
	SlotBag       Slot = "bag"
)
