// component/movement.go
package component

import "go-lone-tower/pkg/geom"

// Position — компонент позиции
type Position struct {
	geom.Vec3
}

// Velocity — компонент скорости. Speed может меняться статус-эффектами,
// BaseSpeed берется из определения врага.
type Velocity struct {
	Speed     float64
	BaseSpeed float64
}
