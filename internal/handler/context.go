package handler

type ContextKey string

var (
	GardenCtx        ContextKey = "garden"
	ZoneCtx          ContextKey = "zone"
	PlantCtx         ContextKey = "plant"
	ScheduleEntryCtx ContextKey = "scheduleEntry"
)
