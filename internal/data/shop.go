package data

// ShopItemType selects the effect of a shop purchase.
type ShopItemType string

// Shop item types.
const (
	ShopHealth ShopItemType = "health"
	ShopAmmo   ShopItemType = "ammo"
	ShopArmor  ShopItemType = "armor"
)

// ShopItem is a purchasable supply station offer.
type ShopItem struct {
	ID          string
	Name        string
	Description string
	Price       int
	Type        ShopItemType
}

var shopCatalog = []ShopItem{
	{ID: "medpack", Name: "Medpack", Description: "Fully restores health", Price: 750, Type: ShopHealth},
	{ID: "ammo", Name: "Ammo Crate", Description: "Refills all ammunition", Price: 250, Type: ShopAmmo},
	{ID: "armor", Name: "Tactical Vest", Description: "Fully restores armor", Price: 500, Type: ShopArmor},
}

// ShopItems returns a copy of the shop catalog.
func ShopItems() []ShopItem {
	out := make([]ShopItem, len(shopCatalog))
	copy(out, shopCatalog)
	return out
}

// PerkEffect identifies a session-long buff granted by a vending machine.
type PerkEffect string

// Perk effects.
const (
	PerkSpeedBoost  PerkEffect = "speed-boost"
	PerkQuickReload PerkEffect = "quick-reload"
	PerkDoubleTap   PerkEffect = "double-tap"
	PerkJuggernaut  PerkEffect = "juggernaut"
	PerkDeadShot    PerkEffect = "dead-shot"
)

// Perk describes a vending machine buff.
type Perk struct {
	ID          string
	Name        string
	Description string
	Effect      PerkEffect
}

var perkCatalog = []Perk{
	{ID: "badge-boost", Name: "Badge Boost", Description: "Move faster", Effect: PerkSpeedBoost},
	{ID: "quick-draw", Name: "Quick Draw", Description: "Reload weapons faster", Effect: PerkQuickReload},
	{ID: "double-tap", Name: "Double Tap", Description: "Fire weapons faster", Effect: PerkDoubleTap},
	{ID: "kevlar-cola", Name: "Kevlar Cola", Description: "Take less damage", Effect: PerkJuggernaut},
	{ID: "dead-eye", Name: "Dead Eye", Description: "Increased headshot damage", Effect: PerkDeadShot},
}

// Perks returns a copy of the perk catalog.
func Perks() []Perk {
	out := make([]Perk, len(perkCatalog))
	copy(out, perkCatalog)
	return out
}

// PerkAt returns the perk at the given catalog index.
func PerkAt(i int) Perk {
	return perkCatalog[i]
}

// PowerUpType identifies a drop collected from slain zombies.
type PowerUpType string

// Power-up types. Max-ammo and nuke apply instantly; the rest are timed buffs.
const (
	PowerInstaKill    PowerUpType = "insta-kill"
	PowerDoublePoints PowerUpType = "double-points"
	PowerMaxAmmo      PowerUpType = "max-ammo"
	PowerNuke         PowerUpType = "nuke"
	PowerSpeedBoost   PowerUpType = "speed-boost"
)

// PowerUpTypes lists every drop type in roll order.
func PowerUpTypes() []PowerUpType {
	return []PowerUpType{PowerInstaKill, PowerDoublePoints, PowerMaxAmmo, PowerNuke, PowerSpeedBoost}
}
