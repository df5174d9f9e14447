package progression

// PurchaseFailReason объясняет, почему покупка не состоялась.
type PurchaseFailReason int

const (
	PurchaseOK PurchaseFailReason = iota
	PurchaseInvalidAmount
	PurchaseInsufficientCurrency
)

func (r PurchaseFailReason) String() string {
	switch r {
	case PurchaseOK:
		return "ok"
	case PurchaseInvalidAmount:
		return "invalid amount"
	case PurchaseInsufficientCurrency:
		return "insufficient currency"
	default:
		return "unknown"
	}
}

// UnlockFailReason explains a failed tower unlock.
type UnlockFailReason int

const (
	UnlockOK UnlockFailReason = iota
	UnlockUnknownTower
	UnlockAlreadyUnlocked
	UnlockPrerequisiteLocked
	UnlockInsufficientCurrency
)

func (r UnlockFailReason) String() string {
	switch r {
	case UnlockOK:
		return "ok"
	case UnlockUnknownTower:
		return "unknown tower"
	case UnlockAlreadyUnlocked:
		return "already unlocked"
	case UnlockPrerequisiteLocked:
		return "prerequisite locked"
	case UnlockInsufficientCurrency:
		return "insufficient currency"
	default:
		return "unknown"
	}
}

// UpgradeFailReason explains a failed skill upgrade.
type UpgradeFailReason int

const (
	UpgradeOK UpgradeFailReason = iota
	UpgradeUnknownSkill
	UpgradeMaxLevel
	UpgradePrerequisiteMissing
	UpgradeInsufficientCurrency
)

func (r UpgradeFailReason) String() string {
	switch r {
	case UpgradeOK:
		return "ok"
	case UpgradeUnknownSkill:
		return "unknown skill"
	case UpgradeMaxLevel:
		return "max level"
	case UpgradePrerequisiteMissing:
		return "prerequisite missing"
	case UpgradeInsufficientCurrency:
		return "insufficient currency"
	default:
		return "unknown"
	}
}
