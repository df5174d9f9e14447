// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"sort"
)

//go:embed data/*.json
var embedded embed.FS

// Database — неизменяемый набор определений, загруженный при старте.
// Ядро симуляции только читает его.
type Database struct {
	BaseTowerID string
	Towers      map[string]TowerData
	Projectiles map[string]ProjectileData
	Enemies     map[string]EnemyDefinition
	Skills      map[string]SkillDefinition
	Waves       WaveSet

	towerOrder []string
	skillOrder []string
}

type towerFile struct {
	Base   string      `json:"base"`
	Towers []TowerData `json:"towers"`
}

// DefaultFS returns the definitions compiled into the binary.
func DefaultFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err) // каталог встроен при сборке
	}
	return sub
}

// LoadDefault loads the embedded definitions.
func LoadDefault() (*Database, error) {
	return Load(DefaultFS())
}

// Load reads towers.json, projectiles.json, enemies.json, waves.json and
// skills.json from fsys.
func Load(fsys fs.FS) (*Database, error) {
	db := &Database{
		Towers:      make(map[string]TowerData),
		Projectiles: make(map[string]ProjectileData),
		Enemies:     make(map[string]EnemyDefinition),
		Skills:      make(map[string]SkillDefinition),
	}

	var towers towerFile
	if err := readJSON(fsys, "towers.json", &towers); err != nil {
		return nil, err
	}
	db.BaseTowerID = towers.Base
	for _, def := range towers.Towers {
		db.Towers[def.ID] = def
		db.towerOrder = append(db.towerOrder, def.ID)
	}

	var projectiles []ProjectileData
	if err := readJSON(fsys, "projectiles.json", &projectiles); err != nil {
		return nil, err
	}
	for _, def := range projectiles {
		db.Projectiles[def.ID] = def
	}

	var enemies []EnemyDefinition
	if err := readJSON(fsys, "enemies.json", &enemies); err != nil {
		return nil, err
	}
	for _, def := range enemies {
		db.Enemies[def.ID] = def
	}

	if err := readJSON(fsys, "waves.json", &db.Waves); err != nil {
		return nil, err
	}

	var skills []SkillDefinition
	if err := readJSON(fsys, "skills.json", &skills); err != nil {
		return nil, err
	}
	for _, def := range skills {
		db.Skills[def.ID] = def
		db.skillOrder = append(db.skillOrder, def.ID)
	}

	if _, ok := db.Towers[db.BaseTowerID]; !ok {
		return nil, fmt.Errorf("base tower %q is not defined", db.BaseTowerID)
	}
	db.warnDanglingRefs()

	log.Printf("Defs: loaded %d towers, %d projectiles, %d enemies, %d waves, %d skills",
		len(db.Towers), len(db.Projectiles), len(db.Enemies), len(db.Waves.Waves), len(db.Skills))
	return db, nil
}

func readJSON(fsys fs.FS, name string, target any) error {
	file, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(file, target); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

// warnDanglingRefs логирует ссылки на несуществующие определения.
// Такие ссылки не фатальны: соответствующая операция просто ничего не делает.
func (db *Database) warnDanglingRefs() {
	for _, id := range db.towerOrder {
		def := db.Towers[id]
		if def.FireMode == FireProjectile {
			if _, ok := db.Projectiles[def.Projectile]; !ok {
				log.Printf("Defs: tower %s references unknown projectile %q", id, def.Projectile)
			}
		}
		if def.FireMode == FireContinuous && def.Continuous == nil {
			log.Printf("Defs: continuous tower %s has no continuous block", id)
		}
	}
	for i, wave := range db.Waves.Waves {
		for _, g := range wave.Groups {
			if _, ok := db.Enemies[g.EnemyID]; !ok {
				log.Printf("Defs: wave %d references unknown enemy %q", i+1, g.EnemyID)
			}
		}
	}
}

// Tower returns a tower definition by id.
func (db *Database) Tower(id string) (TowerData, bool) {
	def, ok := db.Towers[id]
	return def, ok
}

// Projectile returns a projectile definition by id.
func (db *Database) Projectile(id string) (ProjectileData, bool) {
	def, ok := db.Projectiles[id]
	return def, ok
}

// Enemy returns an enemy definition by id.
func (db *Database) Enemy(id string) (EnemyDefinition, bool) {
	def, ok := db.Enemies[id]
	return def, ok
}

// AbilityTowers returns the towers that carry an ability block, in file order.
func (db *Database) AbilityTowers() []TowerData {
	var out []TowerData
	for _, id := range db.towerOrder {
		if def := db.Towers[id]; def.Ability != nil {
			out = append(out, def)
		}
	}
	return out
}

// SkillList returns skills in file order.
func (db *Database) SkillList() []SkillDefinition {
	out := make([]SkillDefinition, 0, len(db.skillOrder))
	for _, id := range db.skillOrder {
		out = append(out, db.Skills[id])
	}
	return out
}

// TowerIDs returns all tower ids sorted alphabetically.
func (db *Database) TowerIDs() []string {
	ids := make([]string, 0, len(db.Towers))
	for id := range db.Towers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
