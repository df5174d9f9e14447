package ui

import (
	"fmt"
	"image/color"

	"go-lone-tower/internal/config"
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/progression"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	shopLineHeight = 20
	shopMargin     = 40
)

// ShopEntryKind — что покупается строкой магазина.
type ShopEntryKind int

const (
	ShopTower ShopEntryKind = iota
	ShopSkill
)

// ShopEntry — одна строка магазина: башня для открытия или уровень навыка.
type ShopEntry struct {
	Kind      ShopEntryKind
	ID        string
	Label     string
	Cost      int // -1, если покупать больше нечего
	Level     int
	MaxLevel  int
	Owned     bool
	Available bool // предусловия выполнены, не считая денег
}

// BuildShop собирает строки магазина из определений и текущего прогресса.
func BuildShop(db *defs.Database, progress *progression.Service) []ShopEntry {
	var entries []ShopEntry
	for _, t := range db.AbilityTowers() {
		owned := progress.IsUnlocked(t.ID)
		prereq := t.Ability.Prerequisite == "" || progress.IsUnlocked(t.Ability.Prerequisite)
		entries = append(entries, ShopEntry{
			Kind:      ShopTower,
			ID:        t.ID,
			Label:     fmt.Sprintf("[%s] %s", t.Ability.Hotkey, t.Name),
			Cost:      t.Ability.UnlockCost,
			Owned:     owned,
			Available: !owned && prereq,
		})
	}
	store := progress.Store()
	for _, sk := range db.SkillList() {
		level := store.CurrentLevel(sk.ID)
		prereq := sk.Requires == "" || store.CurrentLevel(sk.Requires) >= 1
		entries = append(entries, ShopEntry{
			Kind:      ShopSkill,
			ID:        sk.ID,
			Label:     sk.Name,
			Cost:      sk.CostForLevel(level + 1),
			Level:     level,
			MaxLevel:  sk.MaxLevel,
			Owned:     level >= sk.MaxLevel,
			Available: level < sk.MaxLevel && prereq,
		})
	}
	return entries
}

// ShopPanel рисует магазин в паузе и держит курсор выбора.
type ShopPanel struct {
	Cursor  int
	Message string
	face    font.Face
}

func NewShopPanel(face font.Face) *ShopPanel {
	return &ShopPanel{face: face}
}

// Move сдвигает курсор по кругу.
func (p *ShopPanel) Move(delta, count int) {
	if count == 0 {
		p.Cursor = 0
		return
	}
	p.Cursor = ((p.Cursor+delta)%count + count) % count
}

func (p *ShopPanel) Draw(screen *ebiten.Image, entries []ShopEntry, currency int) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 160}, false)

	x, y := shopMargin, shopMargin
	text.Draw(screen, fmt.Sprintf("PAUSED   currency: %d   [up/down] select  [enter] buy  [P] resume", currency), p.face, x, y, config.TextLightColor)
	y += shopLineHeight * 2

	lastKind := ShopEntryKind(-1)
	for i, e := range entries {
		if e.Kind != lastKind {
			title := "Towers"
			if e.Kind == ShopSkill {
				title = "Skills"
			}
			y += shopLineHeight / 2
			text.Draw(screen, title, p.face, x, y, config.TextLightColor)
			y += shopLineHeight
			lastKind = e.Kind
		}

		c := color.RGBA{150, 150, 150, 255}
		switch {
		case e.Owned:
			c = config.AbilityStateColors["READY"]
		case e.Available && e.Cost <= currency:
			c = config.TextLightColor
		}
		marker := "  "
		if i == p.Cursor {
			marker = "> "
		}
		text.Draw(screen, marker+entryText(e), p.face, x, y, c)
		y += shopLineHeight
	}

	if p.Message != "" {
		text.Draw(screen, p.Message, p.face, x, config.ScreenHeight-shopMargin, config.TextLightColor)
	}
}

func entryText(e ShopEntry) string {
	if e.Kind == ShopTower {
		if e.Owned {
			return fmt.Sprintf("%-24s unlocked", e.Label)
		}
		return fmt.Sprintf("%-24s %d", e.Label, e.Cost)
	}
	if e.Owned {
		return fmt.Sprintf("%-24s %d/%d max", e.Label, e.Level, e.MaxLevel)
	}
	return fmt.Sprintf("%-24s %d/%d  next %d", e.Label, e.Level, e.MaxLevel, e.Cost)
}
