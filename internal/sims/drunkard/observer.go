package drunkard

// Observer receives the tile events of a generation run. Coordinates are
// grid-local; translating them into screen or world space is up to the
// implementation.
type Observer interface {
	// OnCarve fires once per tile that became floor.
	OnCarve(x, y int)
	// OnWall fires once per tile that became wall.
	OnWall(x, y int)
	// OnSpawnPoint fires once at completion. ok is false when no floor tile
	// exists in the interior.
	OnSpawnPoint(p Point, ok bool)
}

// NopObserver ignores all events.
type NopObserver struct{}

func (NopObserver) OnCarve(int, int) {}
func (NopObserver) OnWall(int, int) {}
func (NopObserver) OnSpawnPoint(Point, bool) {}

// Observers fans events out to every member in order.
type Observers []Observer

func (o Observers) OnCarve(x, y int) {
	for _, obs := range o {
		obs.OnCarve(x, y)
	}
}

func (o Observers) OnWall(x, y int) {
	for _, obs := range o {
		obs.OnWall(x, y)
	}
}

func (o Observers) OnSpawnPoint(p Point, ok bool) {
	for _, obs := range o {
		obs.OnSpawnPoint(p, ok)
	}
}
