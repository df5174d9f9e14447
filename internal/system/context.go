package system

import (
	"go-lone-tower/internal/defs"
	"go-lone-tower/internal/entity"
	"go-lone-tower/internal/event"
	"go-lone-tower/internal/timer"
	"go-lone-tower/internal/utils"
)

// Context — общие зависимости симуляции. Создается оркестратором и
// передается каждой системе при конструировании.
type Context struct {
	World     *entity.World
	Events    *event.Dispatcher
	Scheduler *timer.Scheduler
	Defs      *defs.Database
	Rand      *utils.PRNGService
}
